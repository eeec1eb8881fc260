package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/examprep/internal/content"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the content files",
		Long:  "Check editorials, quizzes, calendar events, gamification records and moderation reports for consistency",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			dataset, err := a.content.Dataset(cmd.Context())
			if err != nil {
				return fmt.Errorf("content.Dataset() > %w", err)
			}
			validator, err := content.NewValidator()
			if err != nil {
				return fmt.Errorf("content.NewValidator() > %w", err)
			}
			if err := validator.Dataset(dataset); err != nil {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "✗ Validation failed")
				return fmt.Errorf("validate content: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ All validations passed! %d editorials, %d calendar events, %d leaderboard entries, %d achievements, %d moderation reports\n",
				len(dataset.Editorials), len(dataset.CalendarEvents), len(dataset.Leaderboard), len(dataset.Achievements), len(dataset.Moderation))
			return nil
		},
	}
}
