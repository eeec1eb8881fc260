package gamification

import (
	"fmt"
	"sort"

	"github.com/at-ishikawa/examprep/internal/content"
)

type Timeframe string

const (
	Weekly  Timeframe = "weekly"
	Monthly Timeframe = "monthly"
	AllTime Timeframe = "all-time"
)

// ParseTimeframe accepts weekly, monthly and all-time.
func ParseTimeframe(value string) (Timeframe, error) {
	switch t := Timeframe(value); t {
	case Weekly, Monthly, AllTime:
		return t, nil
	}
	return "", fmt.Errorf("unknown timeframe %q: expected weekly, monthly or all-time", value)
}

// Points returns the score an entry is ranked by in timeframe.
// Only weekly totals are tracked separately; monthly uses the overall total.
func (t Timeframe) Points(entry content.LeaderboardEntry) int {
	if t == Weekly {
		return entry.WeeklyPoints
	}
	return entry.TotalPoints
}

// RankedEntry is a leaderboard row with its position in a timeframe.
type RankedEntry struct {
	content.LeaderboardEntry
	Position int
	Points   int
}

// Rank orders entries by their points in timeframe, highest first, ties by name.
// Positions start at 1 and equal points share a position.
func Rank(entries []content.LeaderboardEntry, timeframe Timeframe) []RankedEntry {
	ranked := make([]RankedEntry, 0, len(entries))
	for _, entry := range entries {
		ranked = append(ranked, RankedEntry{
			LeaderboardEntry: entry,
			Points:           timeframe.Points(entry),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Points != ranked[j].Points {
			return ranked[i].Points > ranked[j].Points
		}
		return ranked[i].Name < ranked[j].Name
	})
	for i := range ranked {
		if i > 0 && ranked[i].Points == ranked[i-1].Points {
			ranked[i].Position = ranked[i-1].Position
			continue
		}
		ranked[i].Position = i + 1
	}
	return ranked
}

// FindEntry returns the ranked entry for id.
func FindEntry(ranked []RankedEntry, id string) (RankedEntry, bool) {
	for _, entry := range ranked {
		if entry.ID == id {
			return entry, true
		}
	}
	return RankedEntry{}, false
}

// RankIcon is the medal shown next to the top three positions.
func RankIcon(position int) string {
	switch position {
	case 1:
		return "👑"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return fmt.Sprintf("#%d", position)
}
