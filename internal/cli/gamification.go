package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/examprep/internal/content"
	"github.com/at-ishikawa/examprep/internal/gamification"
)

// WriteLeaderboard prints the ranked entries. The row of currentUserID is
// highlighted and, when it falls outside the printed rows, appended below.
func WriteLeaderboard(w io.Writer, ranked []gamification.RankedEntry, timeframe gamification.Timeframe, currentUserID string, limit int) {
	_, _ = headingColor.Fprintf(w, "Leaderboard (%s)\n", timeframe)
	if len(ranked) == 0 {
		_, _ = fmt.Fprintln(w, "No entries yet.")
		return
	}

	shown := ranked
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	printedCurrent := false
	for _, entry := range shown {
		writeLeaderboardRow(w, entry, entry.ID == currentUserID)
		if entry.ID == currentUserID {
			printedCurrent = true
		}
	}

	if printedCurrent || currentUserID == "" {
		return
	}
	if entry, ok := gamification.FindEntry(ranked, currentUserID); ok {
		_, _ = fmt.Fprintln(w, "  ...")
		writeLeaderboardRow(w, entry, true)
	}
}

func writeLeaderboardRow(w io.Writer, entry gamification.RankedEntry, current bool) {
	row := fmt.Sprintf("%-4s %-20s %6d pts  streak %3d  level %2d  %s",
		gamification.RankIcon(entry.Position),
		entry.Name,
		entry.Points,
		entry.Streak,
		entry.Level,
		badgeIcons(entry.Badges),
	)
	if current {
		row = color.New(color.FgCyan, color.Bold).Sprint(row + "  (you)")
	}
	_, _ = fmt.Fprintln(w, strings.TrimRight(row, " "))
}

func badgeIcons(badges []content.Badge) string {
	icons := make([]string, 0, len(badges))
	for _, badge := range badges {
		if badge.Icon != "" {
			icons = append(icons, badge.Icon)
		}
	}
	return strings.Join(icons, "")
}

// WriteAchievements prints completed, in progress and locked achievements.
func WriteAchievements(w io.Writer, achievements []content.Achievement) {
	groups := gamification.GroupAchievements(achievements)
	_, _ = headingColor.Fprintf(w, "Achievements  %d of %d completed  %d points earned\n",
		len(groups.Completed), len(achievements), gamification.AchievementPoints(achievements))

	sections := []struct {
		title        string
		achievements []content.Achievement
	}{
		{title: "Completed", achievements: groups.Completed},
		{title: "In progress", achievements: groups.InProgress},
		{title: "Locked", achievements: groups.Locked},
	}
	for _, section := range sections {
		if len(section.achievements) == 0 {
			continue
		}
		_, _ = fmt.Fprintf(w, "\n%s\n", color.New(color.Bold).Sprint(section.title))
		for _, a := range section.achievements {
			_, _ = fmt.Fprintf(w, "- %s (%d pts) %d/%d %s\n",
				a.Title, a.Points, a.Progress, a.Target, progressBar(gamification.AchievementPercentage(a)))
			if a.Description != "" {
				_, _ = faintColor.Fprintf(w, "  %s\n", a.Description)
			}
		}
	}

	badges := gamification.UnlockedBadges(achievements)
	if len(badges) == 0 {
		return
	}
	_, _ = fmt.Fprintf(w, "\n%s\n", color.New(color.Bold).Sprint("Badges"))
	for _, badge := range badges {
		_, _ = fmt.Fprintf(w, "%s %s (%s)\n", badge.Icon, badge.Name, badge.Rarity)
	}
}

// progressBar is a ten cell bar followed by the percentage.
func progressBar(percentage int) string {
	filled := percentage / 10
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}
	return fmt.Sprintf("[%s%s] %d%%", strings.Repeat("#", filled), strings.Repeat("-", 10-filled), percentage)
}
