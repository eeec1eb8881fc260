package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/examprep/internal/cli"
	"github.com/at-ishikawa/examprep/internal/identity"
	"github.com/at-ishikawa/examprep/internal/learning"
	"github.com/at-ishikawa/examprep/internal/progress"
)

const monthLayout = "2006-01"

func newCalendarCommand() *cobra.Command {
	var month string

	command := &cobra.Command{
		Use:   "calendar",
		Short: "Show the study calendar of a month and your streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			shown := time.Now()
			if month != "" {
				parsed, err := time.Parse(monthLayout, month)
				if err != nil {
					return fmt.Errorf("invalid --month %q, expected YYYY-MM: %w", month, err)
				}
				shown = parsed
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			user, err := a.authorize(cmd.Context(), identity.ActionViewCalendar)
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

			events := append(dataset.CalendarEvents[:len(dataset.CalendarEvents):len(dataset.CalendarEvents)], learning.CalendarEvents(history, a.cfg.Learning.PassMark, time.Local)...)
			cli.WriteCalendar(cmd.OutOrStdout(), progress.Month(shown.Year(), shown.Month(), events, time.Local), dataset.StudyStreak)
			return nil
		},
	}

	command.Flags().StringVar(&month, "month", "", "month to show as YYYY-MM, the current month by default")
	return command
}
