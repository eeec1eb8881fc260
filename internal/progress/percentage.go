// Package progress aggregates learner progress: mastery of vocabulary cards,
// roll-ups of calendar events per day and streak figures.
package progress

// Percentage returns 100*part/total rounded half up, or 0 when total is not positive.
func Percentage(part, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*part + total) / (2 * total)
}
