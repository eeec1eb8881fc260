// Package learning records finished study sessions and summarizes them.
package learning

import (
	"time"

	"github.com/google/uuid"

	"github.com/at-ishikawa/examprep/internal/assessment"
)

type Activity string

const (
	ActivityEditorialQuiz  Activity = "editorial_quiz"
	ActivityVocabularyQuiz Activity = "vocabulary_quiz"
	ActivityFlashcards     Activity = "flashcards"
)

// Attempt is one finished session.
type Attempt struct {
	ID          string    `db:"id" yaml:"id"`
	UserID      string    `db:"user_id" yaml:"user_id"`
	Activity    Activity  `db:"activity" yaml:"activity"`
	ReferenceID string    `db:"reference_id" yaml:"reference_id"`
	Title       string    `db:"title" yaml:"title"`
	Total       int       `db:"total" yaml:"total"`
	Correct     int       `db:"correct" yaml:"correct"`
	Percentage  int       `db:"percentage" yaml:"percentage"`
	CompletedAt time.Time `db:"completed_at" yaml:"completed_at"`
}

// NewAttempt records summary for the session on referenceID that ended at now.
func NewAttempt(userID string, activity Activity, referenceID, title string, summary assessment.ScoreSummary, now time.Time) Attempt {
	return Attempt{
		ID:          uuid.NewString(),
		UserID:      userID,
		Activity:    activity,
		ReferenceID: referenceID,
		Title:       title,
		Total:       summary.Total,
		Correct:     summary.Correct,
		Percentage:  summary.Percentage,
		CompletedAt: now.UTC(),
	}
}
