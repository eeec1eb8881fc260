package database

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

const migrationsTable = "schema_migrations"

// Migrate applies the .sql files under dir of migrations that have not been
// applied yet, in file name order, and returns the names it applied.
// Each file runs in its own transaction together with its bookkeeping row.
func Migrate(ctx context.Context, db *sqlx.DB, migrations fs.FS, dir string) ([]string, error) {
	if _, err := db.ExecContext(ctx, "CREATE TABLE IF NOT EXISTS "+migrationsTable+" (name VARCHAR(255) NOT NULL PRIMARY KEY, applied_at TIMESTAMP NOT NULL)"); err != nil {
		return nil, fmt.Errorf("create %s: %w", migrationsTable, err)
	}

	var applied []string
	if err := db.SelectContext(ctx, &applied, db.Rebind("SELECT name FROM "+migrationsTable)); err != nil {
		return nil, fmt.Errorf("load applied migrations: %w", err)
	}
	done := make(map[string]struct{}, len(applied))
	for _, name := range applied {
		done[name] = struct{}{}
	}

	entries, err := fs.ReadDir(migrations, dir)
	if err != nil {
		return nil, fmt.Errorf("fs.ReadDir(%s) > %w", dir, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".sql" {
			continue
		}
		if _, ok := done[entry.Name()]; ok {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		body, err := fs.ReadFile(migrations, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("fs.ReadFile(%s) > %w", name, err)
		}
		err = RunInTx(ctx, db, func(ctx context.Context, tx *sqlx.Tx) error {
			for _, statement := range splitStatements(string(body)) {
				if _, err := tx.ExecContext(ctx, statement); err != nil {
					return fmt.Errorf("apply %s: %w", name, err)
				}
			}
			if _, err := tx.ExecContext(ctx, tx.Rebind("INSERT INTO "+migrationsTable+" (name, applied_at) VALUES (?, ?)"), name, time.Now().UTC()); err != nil {
				return fmt.Errorf("record %s: %w", name, err)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		slog.Info("applied migration", "name", name)
	}
	return names, nil
}

func splitStatements(body string) []string {
	var statements []string
	for _, statement := range strings.Split(body, ";") {
		if statement = strings.TrimSpace(statement); statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}
