package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/examprep/internal/cli"
	"github.com/at-ishikawa/examprep/internal/content"
	"github.com/at-ishikawa/examprep/internal/identity"
	"github.com/at-ishikawa/examprep/internal/learning"
)

func newAdminCommand() *cobra.Command {
	adminCommand := &cobra.Command{
		Use:   "admin",
		Short: "Manage editorials and users, moderate reports and review analytics",
	}

	adminCommand.AddCommand(newAdminEditorialsCommand())
	adminCommand.AddCommand(newAdminUsersCommand())
	adminCommand.AddCommand(newAdminModerationCommand())
	adminCommand.AddCommand(newAdminAnalyticsCommand())
	adminCommand.AddCommand(newAdminImportCommand())

	return adminCommand
}

func newAdminEditorialsCommand() *cobra.Command {
	var search, category string

	command := &cobra.Command{
		Use:   "editorials",
		Short: "List editorials with their vocabulary and quiz sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			if _, err := a.authorize(cmd.Context(), identity.ActionManageEditorials); err != nil {
				return err
			}
			editorials, err := a.content.Editorials(cmd.Context())
			if err != nil {
				return fmt.Errorf("content.Editorials() > %w", err)
			}
			cli.WriteAdminEditorials(cmd.OutOrStdout(), content.FilterEditorials(editorials, search, category))
			return nil
		},
	}

	command.Flags().StringVar(&search, "search", "", "filter by title or category")
	command.Flags().StringVar(&category, "category", content.CategoryAll, "filter by category")
	return command
}

func newAdminUsersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List registered users",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			if _, err := a.authorize(cmd.Context(), identity.ActionManageUsers); err != nil {
				return err
			}
			users, err := a.identity.Users(cmd.Context())
			if err != nil {
				return fmt.Errorf("identity.Users() > %w", err)
			}
			cli.WriteUsers(cmd.OutOrStdout(), users)
			return nil
		},
	}
}

func newAdminModerationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "moderation",
		Short: "List pending content and user behavior reports, most severe first",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			if _, err := a.authorize(cmd.Context(), identity.ActionModerateContent); err != nil {
				return err
			}
			dataset, err := a.content.Dataset(cmd.Context())
			if err != nil {
				return fmt.Errorf("content.Dataset() > %w", err)
			}
			cli.WriteModerationQueue(cmd.OutOrStdout(), dataset.Moderation)
			return nil
		},
	}
}

func newAdminAnalyticsCommand() *cobra.Command {
	var year, month int

	command := &cobra.Command{
		Use:   "analytics",
		Short: "Show monthly attempt statistics of all users",
		RunE: func(cmd *cobra.Command, args []string) error {
			if month < 0 || month > 12 {
				return fmt.Errorf("invalid --month %d, expected 1-12", month)
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			if _, err := a.authorize(cmd.Context(), identity.ActionViewAnalytics); err != nil {
				return err
			}
			attempts, err := a.attempts()
			if err != nil {
				return err
			}
			all, err := attempts.FindAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("attempts.FindAll() > %w", err)
			}
			cli.WriteAnalytics(cmd.OutOrStdout(), learning.CalculateStatistics(all, year, month, a.cfg.Learning.PassMark))
			return nil
		},
	}

	command.Flags().IntVar(&year, "year", 0, "only count this year")
	command.Flags().IntVar(&month, "month", 0, "only count this month (1-12)")
	return command
}

func newAdminImportCommand() *cobra.Command {
	var (
		id       string
		category string
		output   string
	)

	command := &cobra.Command{
		Use:   "import <article.html>",
		Short: "Draft an editorial YAML file from an HTML article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			if _, err := a.authorize(cmd.Context(), identity.ActionManageEditorials); err != nil {
				return err
			}

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("os.Open(%s) > %w", args[0], err)
			}
			defer func() { _ = file.Close() }()

			editorial, err := content.ImportEditorialHTML(file)
			if err != nil {
				return fmt.Errorf("content.ImportEditorialHTML() > %w", err)
			}
			editorial.ID = id
			editorial.Category = content.Category(category)
			editorial.Date = content.NewDateFromTime(time.Now())
			editorial.Quiz.ID = "quiz-" + id
			editorial.Quiz.EditorialID = id

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				outputFile, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("os.Create(%s) > %w", output, err)
				}
				defer func() { _ = outputFile.Close() }()
				w = outputFile
			}

			encoder := yaml.NewEncoder(w)
			encoder.SetIndent(2)
			if err := encoder.Encode(editorial); err != nil {
				return fmt.Errorf("yaml.Encode() > %w", err)
			}
			if err := encoder.Close(); err != nil {
				return fmt.Errorf("encoder.Close() > %w", err)
			}
			if output != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Drafted %s to %s\n", editorial.Title, output)
			}
			return nil
		},
	}

	command.Flags().StringVar(&id, "id", "", "editorial ID")
	command.Flags().StringVar(&category, "category", string(content.CategoryPolitics), "editorial category")
	command.Flags().StringVarP(&output, "output", "o", "", "file to write, stdout by default")
	_ = command.MarkFlagRequired("id")
	return command
}
