package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/examprep/internal/content"
	"github.com/at-ishikawa/examprep/internal/progress"
)

var statusMarkers = map[content.EventStatus]string{
	content.EventStatusCompleted: "*",
	content.EventStatusAttempted: "~",
	content.EventStatusMissed:    "!",
	content.EventStatusUpcoming:  "+",
}

var statusColors = map[content.EventStatus]*color.Color{
	content.EventStatusCompleted: color.New(color.FgGreen),
	content.EventStatusAttempted: color.New(color.FgYellow),
	content.EventStatusMissed:    color.New(color.FgRed),
	content.EventStatusUpcoming:  color.New(color.FgBlue),
}

func statusColor(status content.EventStatus) *color.Color {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return color.New(color.Reset)
}

// WriteCalendar prints a month grid marked with each day's rolled up status,
// the events of the month, their status counts and the study streak.
func WriteCalendar(w io.Writer, view progress.MonthView, streak content.StudyStreak) {
	_, _ = headingColor.Fprintf(w, "%s %d\n", view.Month, view.Year)
	_, _ = fmt.Fprintln(w, " Su  Mo  Tu  We  Th  Fr  Sa")

	var line strings.Builder
	line.WriteString(strings.Repeat("    ", view.Offset))
	column := view.Offset
	for _, day := range view.Days {
		marker := " "
		if day.HasStatus {
			marker = statusColor(day.Status).Sprint(statusMarkers[day.Status])
		}
		fmt.Fprintf(&line, " %2d%s", day.Date.Day(), marker)
		column++
		if column == 7 {
			_, _ = fmt.Fprintln(w, line.String())
			line.Reset()
			column = 0
		}
	}
	if column > 0 {
		_, _ = fmt.Fprintln(w, line.String())
	}
	_, _ = faintColor.Fprintln(w, "* completed  ~ attempted  ! missed  + upcoming")
	_, _ = fmt.Fprintln(w)

	var events []content.CalendarEvent
	for _, day := range view.Days {
		events = append(events, day.Events...)
	}
	if len(events) == 0 {
		_, _ = fmt.Fprintln(w, "No events this month.")
	}
	for _, event := range events {
		score := ""
		if event.Score != nil {
			score = fmt.Sprintf(" (%d%%)", *event.Score)
		}
		_, _ = fmt.Fprintf(w, "%s  %-9s %s  %s%s\n",
			event.Date,
			event.Type,
			statusColor(event.Status).Sprintf("%-9s", event.Status),
			event.Title,
			score,
		)
	}

	counts := progress.CountByStatus(events)
	_, _ = fmt.Fprintln(w)
	_, _ = headingColor.Fprintln(w, "This month")
	_, _ = fmt.Fprintf(w, "Completed: %d  Attempted: %d  Missed: %d  Upcoming: %d\n",
		counts.Completed, counts.Attempted, counts.Missed, counts.Upcoming)

	WriteStreak(w, streak)
}

// WriteStreak prints the study streak card.
func WriteStreak(w io.Writer, streak content.StudyStreak) {
	_, _ = fmt.Fprintln(w)
	_, _ = headingColor.Fprintln(w, "Study streak")
	_, _ = fmt.Fprintf(w, "Current: %d days  Longest: %d days  (%d%% of your best)\n",
		streak.Current, streak.Longest, progress.StreakProgress(streak))
	if !streak.LastStudyDate.IsZero() {
		_, _ = fmt.Fprintf(w, "Last studied: %s\n", streak.LastStudyDate)
	}
}
