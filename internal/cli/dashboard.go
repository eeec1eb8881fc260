package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/at-ishikawa/examprep/internal/content"
	"github.com/at-ishikawa/examprep/internal/identity"
	"github.com/at-ishikawa/examprep/internal/learning"
)

// Dashboard is the data shown on the home screen.
type Dashboard struct {
	User             identity.User
	Streak           content.StudyStreak
	Statistics       learning.AggregateStatistics
	RecentEditorials []content.Editorial
}

const recentEditorialCount = 3

// WriteDashboard prints the stats cards, the latest editorials and the
// commands the user may run.
func WriteDashboard(w io.Writer, d Dashboard) {
	roleBadge := "Student"
	if d.User.Role == identity.RoleAdmin {
		roleBadge = "Admin"
	}
	_, _ = headingColor.Fprintln(w, "SSC Exam Prep")
	_, _ = fmt.Fprintf(w, "Welcome, %s [%s] (%s)\n\n", d.User.Name, d.User.Initials(), roleBadge)

	_, _ = fmt.Fprintf(w, "Daily streak:      %d days\n", d.Streak.Current)
	_, _ = fmt.Fprintf(w, "Quizzes completed: %d\n", d.Statistics.Attempts)
	average := "-"
	if d.Statistics.Attempts > 0 {
		average = scoreColor(d.Statistics.AveragePercentage).Sprintf("%d%%", d.Statistics.AveragePercentage)
	}
	_, _ = fmt.Fprintf(w, "Average score:     %s\n", average)
	_, _ = fmt.Fprintf(w, "Points:            %d\n", d.User.TotalPoints)
	if d.User.Rank > 0 {
		_, _ = fmt.Fprintf(w, "Rank:              #%d\n", d.User.Rank)
	}

	recent := d.RecentEditorials
	if len(recent) > recentEditorialCount {
		recent = recent[:recentEditorialCount]
	}
	if len(recent) > 0 {
		_, _ = fmt.Fprintln(w)
		_, _ = headingColor.Fprintln(w, "Today's editorials")
		for _, editorial := range recent {
			_, _ = fmt.Fprintf(w, "- %s %s (%s, %d min)\n",
				editorial.ID, color.New(color.Bold).Sprint(editorial.Title), editorial.Category, editorial.ReadTime)
		}
	}

	_, _ = fmt.Fprintln(w)
	_, _ = headingColor.Fprintln(w, "Quick actions")
	actions := []struct {
		action  identity.Action
		command string
		label   string
	}{
		{action: identity.ActionReadEditorial, command: "editorial list", label: "Read editorials"},
		{action: identity.ActionPracticeVocabulary, command: "vocabulary browse", label: "Practice vocabulary"},
		{action: identity.ActionViewCalendar, command: "calendar", label: "Check your calendar"},
		{action: identity.ActionViewLeaderboard, command: "leaderboard", label: "See the leaderboard"},
		{action: identity.ActionViewAdminPanel, command: "admin editorials", label: "Manage content"},
		{action: identity.ActionModerateContent, command: "admin moderation", label: "Review reports"},
	}
	user := d.User
	for _, a := range actions {
		if identity.Can(&user, a.action) {
			_, _ = fmt.Fprintf(w, "- %-20s examprep %s\n", a.label, a.command)
		}
	}
}
