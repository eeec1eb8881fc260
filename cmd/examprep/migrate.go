package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/examprep/internal/database"
	"github.com/at-ishikawa/examprep/internal/learning"
	"github.com/at-ishikawa/examprep/schemas"
)

func newMigrateCommand() *cobra.Command {
	migrateCommand := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			db, err := database.Open(a.cfg.Database)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer func() { _ = db.Close() }()

			applied, err := database.Migrate(cmd.Context(), db, schemas.Migrations, "migrations")
			if err != nil {
				return fmt.Errorf("database.Migrate() > %w", err)
			}
			if len(applied) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Database is up to date")
				return nil
			}
			for _, name := range applied {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Applied %s\n", name)
			}
			return nil
		},
	}

	migrateCommand.AddCommand(newImportAttemptsCommand())
	return migrateCommand
}

func newImportAttemptsCommand() *cobra.Command {
	var dryRun bool

	command := &cobra.Command{
		Use:   "import-attempts",
		Short: "Copy the attempts in the YAML store into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			source, err := learning.NewYAMLRepository(a.cfg.Learning.Directory).FindAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("YAMLRepository.FindAll() > %w", err)
			}

			db, err := database.Open(a.cfg.Database)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer func() { _ = db.Close() }()
			target := learning.NewDBRepository(db)

			existing, err := target.FindAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("DBRepository.FindAll() > %w", err)
			}
			imported := make(map[string]struct{}, len(existing))
			for _, attempt := range existing {
				imported[attempt.ID] = struct{}{}
			}

			var pending []learning.Attempt
			for _, attempt := range source {
				if _, ok := imported[attempt.ID]; !ok {
					pending = append(pending, attempt)
				}
			}

			if dryRun {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Would import %d of %d attempts\n", len(pending), len(source))
				return nil
			}
			if err := target.BatchCreate(cmd.Context(), pending); err != nil {
				return fmt.Errorf("DBRepository.BatchCreate() > %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d attempts\n", len(pending), len(source))
			return nil
		},
	}

	command.Flags().BoolVar(&dryRun, "dry-run", false, "only count the attempts to import")
	return command
}
