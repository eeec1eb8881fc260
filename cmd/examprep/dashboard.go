package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/examprep/internal/cli"
	"github.com/at-ishikawa/examprep/internal/identity"
	"github.com/at-ishikawa/examprep/internal/learning"
)

func newDashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show your stats, today's editorials and quick actions",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			user, err := a.authorize(cmd.Context(), identity.ActionViewDashboard)
			if err != nil {
				return err
			}
			dataset, err := a.content.Dataset(cmd.Context())
			if err != nil {
				return fmt.Errorf("content.Dataset() > %w", err)
			}
			history, err := userAttempts(cmd, a, user)
			if err != nil {
				return err
			}

			cli.WriteDashboard(cmd.OutOrStdout(), cli.Dashboard{
				User:             *user,
				Streak:           dataset.StudyStreak,
				Statistics:       learning.CalculateStatistics(history, 0, 0, a.cfg.Learning.PassMark).Aggregate,
				RecentEditorials: dataset.Editorials,
			})
			return nil
		},
	}
}

func userAttempts(cmd *cobra.Command, a *app, user *identity.User) ([]learning.Attempt, error) {
	attempts, err := a.attempts()
	if err != nil {
		return nil, err
	}
	history, err := attempts.FindByUser(cmd.Context(), user.ID)
	if err != nil {
		return nil, fmt.Errorf("attempts.FindByUser() > %w", err)
	}
	return history, nil
}
