package progress

import (
	"time"

	"github.com/at-ishikawa/examprep/internal/content"
)

// statusRank orders statuses for RollUp; higher wins.
var statusRank = map[content.EventStatus]int{
	content.EventStatusUpcoming:  1,
	content.EventStatusMissed:    2,
	content.EventStatusAttempted: 3,
	content.EventStatusCompleted: 4,
}

// RollUp reduces the events of one day to a single status with the
// precedence completed > attempted > missed > upcoming.
// It returns false when there are no events with a known status.
func RollUp(events []content.CalendarEvent) (content.EventStatus, bool) {
	var best content.EventStatus
	bestRank := 0
	for _, event := range events {
		if rank := statusRank[event.Status]; rank > bestRank {
			best, bestRank = event.Status, rank
		}
	}
	return best, bestRank > 0
}

// EventsOn returns the events scheduled on day, in their original order.
func EventsOn(events []content.CalendarEvent, day content.Date) []content.CalendarEvent {
	var result []content.CalendarEvent
	for _, event := range events {
		if day.SameDay(event.Date) {
			result = append(result, event)
		}
	}
	return result
}

// DailyStatuses rolls up events per calendar day, keyed by YYYY-MM-DD.
func DailyStatuses(events []content.CalendarEvent) map[string]content.EventStatus {
	byDay := make(map[string][]content.CalendarEvent)
	for _, event := range events {
		key := event.Date.String()
		byDay[key] = append(byDay[key], event)
	}
	statuses := make(map[string]content.EventStatus, len(byDay))
	for key, dayEvents := range byDay {
		if status, ok := RollUp(dayEvents); ok {
			statuses[key] = status
		}
	}
	return statuses
}

// Day is one cell of a month grid.
type Day struct {
	Date      content.Date
	Events    []content.CalendarEvent
	Status    content.EventStatus
	HasStatus bool
}

// MonthView is a calendar month laid out for display.
// Offset is the number of blank cells before the first day in a week starting on Sunday.
type MonthView struct {
	Year   int
	Month  time.Month
	Offset int
	Days   []Day
}

// Month lays out every day of the month in loc (time.Local when nil) with its
// events and roll-up.
func Month(year int, month time.Month, events []content.CalendarEvent, loc *time.Location) MonthView {
	if loc == nil {
		loc = time.Local
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	view := MonthView{
		Year:   year,
		Month:  month,
		Offset: int(first.Weekday()),
		Days:   make([]Day, 0, daysInMonth),
	}
	for d := 1; d <= daysInMonth; d++ {
		date := content.Date{Time: time.Date(year, month, d, 0, 0, 0, 0, loc)}
		dayEvents := EventsOn(events, date)
		status, ok := RollUp(dayEvents)
		view.Days = append(view.Days, Day{
			Date:      date,
			Events:    dayEvents,
			Status:    status,
			HasStatus: ok,
		})
	}
	return view
}

// StatusCounts is the number of events per status.
type StatusCounts struct {
	Completed int
	Attempted int
	Missed    int
	Upcoming  int
}

// CountByStatus counts events by their own status, not the daily roll-up.
func CountByStatus(events []content.CalendarEvent) StatusCounts {
	var counts StatusCounts
	for _, event := range events {
		switch event.Status {
		case content.EventStatusCompleted:
			counts.Completed++
		case content.EventStatusAttempted:
			counts.Attempted++
		case content.EventStatusMissed:
			counts.Missed++
		case content.EventStatusUpcoming:
			counts.Upcoming++
		}
	}
	return counts
}
