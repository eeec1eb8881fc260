package learning

import (
	"time"

	"github.com/at-ishikawa/examprep/internal/content"
)

// CalendarEvents turns attempts into calendar events dated by the day they
// were completed in loc (time.Local when nil). An attempt scoring at least
// passMark is completed, anything lower is attempted.
func CalendarEvents(attempts []Attempt, passMark int, loc *time.Location) []content.CalendarEvent {
	if loc == nil {
		loc = time.Local
	}
	events := make([]content.CalendarEvent, 0, len(attempts))
	for _, a := range attempts {
		status := content.EventStatusAttempted
		if a.Percentage >= passMark {
			status = content.EventStatusCompleted
		}
		eventType := content.EventTypeQuiz
		if a.Activity == ActivityFlashcards {
			eventType = content.EventTypeEditorial
		}
		score := a.Percentage
		events = append(events, content.CalendarEvent{
			ID:     "attempt-" + a.ID,
			Date:   content.NewDateFromTime(a.CompletedAt.In(loc)),
			Type:   eventType,
			Title:  a.Title,
			Status: status,
			Score:  &score,
		})
	}
	return events
}
