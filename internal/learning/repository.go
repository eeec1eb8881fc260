package learning

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/examprep/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/learning/mock_repository.go -package=mock_learning

// Repository stores attempts.
type Repository interface {
	// FindByUser returns the attempts of userID, oldest first.
	FindByUser(ctx context.Context, userID string) ([]Attempt, error)
	// FindAll returns the attempts of every user, oldest first.
	FindAll(ctx context.Context) ([]Attempt, error)
	BatchCreate(ctx context.Context, attempts []Attempt) error
}

var attemptColumns = []string{"id", "user_id", "activity", "reference_id", "title", "total", "correct", "percentage", "completed_at"}

// DBRepository implements Repository using MySQL or SQLite.
type DBRepository struct {
	db *sqlx.DB
}

func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

func (r *DBRepository) FindByUser(ctx context.Context, userID string) ([]Attempt, error) {
	query := r.db.Rebind("SELECT id, user_id, activity, reference_id, title, total, correct, percentage, completed_at FROM learning_attempts WHERE user_id = ? ORDER BY completed_at, id")
	var attempts []Attempt
	if err := r.db.SelectContext(ctx, &attempts, query, userID); err != nil {
		return nil, fmt.Errorf("load attempts of %s: %w", userID, err)
	}
	return attempts, nil
}

func (r *DBRepository) FindAll(ctx context.Context) ([]Attempt, error) {
	var attempts []Attempt
	if err := r.db.SelectContext(ctx, &attempts, "SELECT id, user_id, activity, reference_id, title, total, correct, percentage, completed_at FROM learning_attempts ORDER BY completed_at, id"); err != nil {
		return nil, fmt.Errorf("load attempts: %w", err)
	}
	return attempts, nil
}

// BatchCreate inserts attempts in a single transaction using a multi-row INSERT.
func (r *DBRepository) BatchCreate(ctx context.Context, attempts []Attempt) error {
	if len(attempts) == 0 {
		return nil
	}

	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		query := tx.Rebind(database.BuildMultiRowInsert("learning_attempts", attemptColumns, len(attempts)))

		args := make([]interface{}, 0, len(attempts)*len(attemptColumns))
		for _, a := range attempts {
			args = append(args, a.ID, a.UserID, a.Activity, a.ReferenceID, a.Title, a.Total, a.Correct, a.Percentage, a.CompletedAt)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert attempts: %w", err)
		}
		return nil
	})
}
