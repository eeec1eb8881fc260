package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/examprep/internal/cli"
	"github.com/at-ishikawa/examprep/internal/content"
	"github.com/at-ishikawa/examprep/internal/identity"
	"github.com/at-ishikawa/examprep/internal/learning"
)

func newEditorialCommand() *cobra.Command {
	editorialCommand := &cobra.Command{
		Use:   "editorial",
		Short: "Read editorials and take their quizzes",
	}

	editorialCommand.AddCommand(newEditorialListCommand())
	editorialCommand.AddCommand(newEditorialReadCommand())
	editorialCommand.AddCommand(newEditorialQuizCommand())

	return editorialCommand
}

func newEditorialListCommand() *cobra.Command {
	var search, category string

	command := &cobra.Command{
		Use:   "list",
		Short: "List editorials",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			if _, err := a.authorize(cmd.Context(), identity.ActionReadEditorial); err != nil {
				return err
			}
			editorials, err := a.content.Editorials(cmd.Context())
			if err != nil {
				return fmt.Errorf("content.Editorials() > %w", err)
			}
			cli.WriteEditorialList(cmd.OutOrStdout(), content.FilterEditorials(editorials, search, category))
			return nil
		},
	}

	command.Flags().StringVar(&search, "search", "", "filter by title or category")
	command.Flags().StringVar(&category, "category", content.CategoryAll, "filter by category")
	return command
}

func newEditorialReadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Read an editorial with its vocabulary highlighted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			if _, err := a.authorize(cmd.Context(), identity.ActionReadEditorial); err != nil {
				return err
			}
			editorial, err := findEditorial(cmd, a, args[0])
			if err != nil {
				return err
			}
			cli.WriteEditorial(cmd.OutOrStdout(), editorial)
			return nil
		},
	}
}

func newEditorialQuizCommand() *cobra.Command {
	var saveReport, pdf bool

	command := &cobra.Command{
		Use:   "quiz <id>",
		Short: "Take the quiz of an editorial",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			user, err := a.authorize(cmd.Context(), identity.ActionTakeQuiz)
			if err != nil {
				return err
			}
			editorial, err := findEditorial(cmd, a, args[0])
			if err != nil {
				return err
			}
			attempts, err := a.attempts()
			if err != nil {
				return err
			}

			base := cli.NewInteractiveQuizCLI(cmd.InOrStdin(), cmd.OutOrStdout())
			quiz, err := cli.NewQuizCLI(base, user, learning.ActivityEditorialQuiz, editorial.ID, editorial.Title, editorial.Quiz.Questions, cli.QuizOptions{
				Attempts: attempts,
				Reports:  a.reports(saveReport, pdf),
				PassMark: a.cfg.Learning.PassMark,
			})
			if err != nil {
				return fmt.Errorf("editorial %s has no playable quiz: %w", editorial.ID, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Starting the quiz for %s with %d questions\n", editorial.Title, len(editorial.Quiz.Questions))
			return quiz.Run(cmd.Context(), quiz)
		},
	}

	command.Flags().BoolVar(&saveReport, "report", false, "save a markdown result report")
	command.Flags().BoolVar(&pdf, "pdf", false, "save the result report as PDF")
	return command
}

func findEditorial(cmd *cobra.Command, a *app, id string) (content.Editorial, error) {
	editorial, err := a.content.Editorial(cmd.Context(), id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return content.Editorial{}, fmt.Errorf("editorial %s: %w", id, err)
		}
		return content.Editorial{}, fmt.Errorf("content.Editorial() > %w", err)
	}
	return editorial, nil
}
