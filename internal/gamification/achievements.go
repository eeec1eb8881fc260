// Package gamification derives the leaderboard and achievement panels from content records.
package gamification

import (
	"github.com/at-ishikawa/examprep/internal/content"
	"github.com/at-ishikawa/examprep/internal/progress"
)

// AchievementGroups splits achievements for display.
type AchievementGroups struct {
	Completed  []content.Achievement
	InProgress []content.Achievement
	Locked     []content.Achievement
}

// GroupAchievements puts completed achievements first, then those with some
// progress, then the ones not started.
func GroupAchievements(achievements []content.Achievement) AchievementGroups {
	var groups AchievementGroups
	for _, a := range achievements {
		switch {
		case a.Completed:
			groups.Completed = append(groups.Completed, a)
		case a.Progress > 0:
			groups.InProgress = append(groups.InProgress, a)
		default:
			groups.Locked = append(groups.Locked, a)
		}
	}
	return groups
}

// AchievementPercentage is the progress towards the target.
func AchievementPercentage(a content.Achievement) int {
	if a.Completed {
		return 100
	}
	return progress.Percentage(min(a.Progress, a.Target), a.Target)
}

// AchievementPoints sums the points of completed achievements.
func AchievementPoints(achievements []content.Achievement) int {
	total := 0
	for _, a := range achievements {
		if a.Completed {
			total += a.Points
		}
	}
	return total
}

// UnlockedBadges returns the badges of completed achievements.
func UnlockedBadges(achievements []content.Achievement) []content.Badge {
	var badges []content.Badge
	for _, a := range achievements {
		if a.Completed && a.Badge != nil {
			badges = append(badges, *a.Badge)
		}
	}
	return badges
}
