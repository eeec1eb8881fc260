package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/examprep/internal/content"
	"github.com/at-ishikawa/examprep/internal/identity"
	"github.com/at-ishikawa/examprep/internal/learning"
)

// WriteAdminEditorials prints the editorial manager table.
func WriteAdminEditorials(w io.Writer, editorials []content.Editorial) {
	_, _ = headingColor.Fprintf(w, "Editorials (%d)\n", len(editorials))
	if len(editorials) == 0 {
		_, _ = fmt.Fprintln(w, "No editorials match the filters.")
		return
	}
	_, _ = fmt.Fprintf(w, "%-6s %-10s %-14s %5s %9s  %s\n", "ID", "DATE", "CATEGORY", "WORDS", "QUESTIONS", "TITLE")
	for _, e := range editorials {
		_, _ = fmt.Fprintf(w, "%-6s %-10s %-14s %5d %9d  %s\n",
			e.ID, e.Date, e.Category, len(e.Vocabulary), len(e.Quiz.Questions), e.Title)
	}

	categories := content.Categories(editorials)
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, string(c))
	}
	_, _ = faintColor.Fprintf(w, "Categories: %s\n", strings.Join(names, ", "))
}

// WriteUsers prints registered accounts.
func WriteUsers(w io.Writer, users []identity.User) {
	_, _ = headingColor.Fprintf(w, "Users (%d)\n", len(users))
	if len(users) == 0 {
		_, _ = fmt.Fprintln(w, "No registered users.")
		return
	}
	for _, u := range users {
		joined := "-"
		if !u.JoinedAt.IsZero() {
			joined = u.JoinedAt.Format("2006-01-02")
		}
		_, _ = fmt.Fprintf(w, "%-3s %-24s %-28s %-8s joined %s  %d pts\n",
			u.Initials(), u.Name, u.Email, u.Role, joined, u.TotalPoints)
	}
}

// WriteAnalytics prints attempt statistics per month.
func WriteAnalytics(w io.Writer, result learning.StatisticsResult) {
	_, _ = headingColor.Fprintln(w, "Analytics")
	if len(result.Periods) == 0 {
		_, _ = fmt.Fprintln(w, "No attempts recorded.")
		return
	}
	_, _ = fmt.Fprintf(w, "%-8s %8s %7s %8s %10s\n", "PERIOD", "ATTEMPTS", "PASSED", "AVERAGE", "REFERENCES")
	for _, p := range result.Periods {
		_, _ = fmt.Fprintf(w, "%-8s %8d %7d %7d%% %10d\n", p.Period, p.Attempts, p.Passed, p.AveragePercentage, p.ReferencesStudied)
	}
	a := result.Aggregate
	_, _ = fmt.Fprintf(w, "%-8s %8d %7d %7d%% %10d\n", "TOTAL", a.Attempts, a.Passed, a.AveragePercentage, a.ReferencesStudied)
	_, _ = fmt.Fprintf(w, "Best score: %d%%\n", a.BestPercentage)
}

var severityColors = map[content.Severity]*color.Color{
	content.SeverityHigh:   color.New(color.FgRed, color.Bold),
	content.SeverityMedium: color.New(color.FgYellow),
	content.SeverityLow:    color.New(color.FgGreen),
}

func severityColor(severity content.Severity) *color.Color {
	if c, ok := severityColors[severity]; ok {
		return c
	}
	return color.New(color.Reset)
}

// WriteModerationQueue prints the status counts of reports and the pending
// reports, most severe first.
func WriteModerationQueue(w io.Writer, reports []content.ModerationReport) {
	counts := content.CountReports(reports)
	_, _ = headingColor.Fprintln(w, "Moderation queue")
	_, _ = fmt.Fprintf(w, "Pending: %d  Resolved: %d  Dismissed: %d\n",
		counts[content.ReportStatusPending], counts[content.ReportStatusResolved], counts[content.ReportStatusDismissed])

	pending := content.PendingReports(reports)
	if len(pending) == 0 {
		_, _ = fmt.Fprintln(w, "No reports awaiting review.")
		return
	}
	for _, r := range pending {
		_, _ = fmt.Fprintf(w, "%-4s %s %-13s %s  %s\n",
			r.ID,
			severityColor(r.Severity).Sprintf("%-6s", r.Severity),
			strings.ReplaceAll(string(r.Type), "_", " "),
			r.ReportedAt,
			r.Content,
		)
		reported := r.ReportedUser
		if reported == "" {
			reported = "-"
		}
		_, _ = faintColor.Fprintf(w, "     reported by %s, user %s, reason %s\n", r.Reporter, reported, r.Reason)
	}
}
