package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/examprep/internal/cli"
	"github.com/at-ishikawa/examprep/internal/gamification"
	"github.com/at-ishikawa/examprep/internal/identity"
)

func newLeaderboardCommand() *cobra.Command {
	var (
		timeframe string
		limit     int
	)

	command := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			tf, err := gamification.ParseTimeframe(timeframe)
			if err != nil {
				return fmt.Errorf("gamification.ParseTimeframe() > %w", err)
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			user, err := a.authorize(cmd.Context(), identity.ActionViewLeaderboard)
			if err != nil {
				return err
			}
			dataset, err := a.content.Dataset(cmd.Context())
			if err != nil {
				return fmt.Errorf("content.Dataset() > %w", err)
			}
			cli.WriteLeaderboard(cmd.OutOrStdout(), gamification.Rank(dataset.Leaderboard, tf), tf, user.ID, limit)
			return nil
		},
	}

	command.Flags().StringVar(&timeframe, "timeframe", string(gamification.Weekly), "weekly, monthly or all-time")
	command.Flags().IntVar(&limit, "limit", 10, "number of rows to show, 0 shows all")
	return command
}

func newAchievementsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "Show achievements and unlocked badges",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			if _, err := a.authorize(cmd.Context(), identity.ActionViewLeaderboard); err != nil {
				return err
			}
			dataset, err := a.content.Dataset(cmd.Context())
			if err != nil {
				return fmt.Errorf("content.Dataset() > %w", err)
			}
			cli.WriteAchievements(cmd.OutOrStdout(), dataset.Achievements)
			return nil
		},
	}
}
