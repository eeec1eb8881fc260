package progress

import "github.com/at-ishikawa/examprep/internal/content"

// StreakProgress is the current streak as a percentage of the longest one.
func StreakProgress(streak content.StudyStreak) int {
	if streak.Current >= streak.Longest {
		if streak.Longest == 0 && streak.Current == 0 {
			return 0
		}
		return 100
	}
	return Percentage(streak.Current, streak.Longest)
}
