package content

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

//go:embed fixtures
var fixtures embed.FS

// ErrNotFound is returned when a record with the requested ID does not exist.
var ErrNotFound = errors.New("content not found")

const (
	editorialsDirectory = "editorials"
	calendarFile        = "calendar.yml"
	streakFile          = "streak.yml"
	leaderboardFile     = "leaderboard.yml"
	achievementsFile    = "achievements.yml"
	moderationFile      = "moderation.yml"
)

//go:generate mockgen -source=repository.go -destination=../mocks/content/mock_repository.go -package=mock_content

// Repository provides read-only access to the content datasets.
type Repository interface {
	Dataset(ctx context.Context) (Dataset, error)
	Editorials(ctx context.Context) ([]Editorial, error)
	Editorial(ctx context.Context, id string) (Editorial, error)
	Vocabulary(ctx context.Context) ([]VocabularyWord, error)
}

// YAMLRepository reads content from a directory tree of YAML files:
//
//	editorials/*.yml   one editorial per file
//	calendar.yml       calendar events
//	streak.yml         study streak
//	leaderboard.yml    leaderboard entries
//	achievements.yml   achievements
//	moderation.yml     moderation reports
type YAMLRepository struct {
	fsys fs.FS
}

// NewYAMLRepository creates a repository over a directory on disk.
func NewYAMLRepository(directory string) *YAMLRepository {
	return &YAMLRepository{fsys: os.DirFS(directory)}
}

// NewEmbeddedRepository creates a repository over the bundled sample content.
func NewEmbeddedRepository() *YAMLRepository {
	sub, err := fs.Sub(fixtures, "fixtures")
	if err != nil {
		panic(fmt.Errorf("fs.Sub(fixtures) > %w", err))
	}
	return &YAMLRepository{fsys: sub}
}

// NewRepository returns the embedded repository when directory is empty.
func NewRepository(directory string) *YAMLRepository {
	if directory == "" {
		return NewEmbeddedRepository()
	}
	return NewYAMLRepository(directory)
}

func (r *YAMLRepository) Dataset(ctx context.Context) (Dataset, error) {
	editorials, err := r.Editorials(ctx)
	if err != nil {
		return Dataset{}, err
	}
	events, err := readOptionalYamlFile[[]CalendarEvent](r.fsys, calendarFile)
	if err != nil {
		return Dataset{}, fmt.Errorf("readOptionalYamlFile(%s) > %w", calendarFile, err)
	}
	streak, err := readOptionalYamlFile[StudyStreak](r.fsys, streakFile)
	if err != nil {
		return Dataset{}, fmt.Errorf("readOptionalYamlFile(%s) > %w", streakFile, err)
	}
	leaderboard, err := readOptionalYamlFile[[]LeaderboardEntry](r.fsys, leaderboardFile)
	if err != nil {
		return Dataset{}, fmt.Errorf("readOptionalYamlFile(%s) > %w", leaderboardFile, err)
	}
	achievements, err := readOptionalYamlFile[[]Achievement](r.fsys, achievementsFile)
	if err != nil {
		return Dataset{}, fmt.Errorf("readOptionalYamlFile(%s) > %w", achievementsFile, err)
	}
	moderation, err := readOptionalYamlFile[[]ModerationReport](r.fsys, moderationFile)
	if err != nil {
		return Dataset{}, fmt.Errorf("readOptionalYamlFile(%s) > %w", moderationFile, err)
	}

	return Dataset{
		Editorials:     editorials,
		CalendarEvents: events,
		StudyStreak:    streak,
		Leaderboard:    leaderboard,
		Achievements:   achievements,
		Moderation:     moderation,
	}, nil
}

func (r *YAMLRepository) Editorials(ctx context.Context) ([]Editorial, error) {
	editorials, err := loadYamlFiles[Editorial](r.fsys, editorialsDirectory)
	if err != nil {
		return nil, fmt.Errorf("loadYamlFiles(%s) > %w", editorialsDirectory, err)
	}
	for i := range editorials {
		if editorials[i].Quiz.EditorialID == "" {
			editorials[i].Quiz.EditorialID = editorials[i].ID
		}
	}
	return editorials, nil
}

func (r *YAMLRepository) Editorial(ctx context.Context, id string) (Editorial, error) {
	editorials, err := r.Editorials(ctx)
	if err != nil {
		return Editorial{}, err
	}
	for _, editorial := range editorials {
		if editorial.ID == id {
			return editorial, nil
		}
	}
	return Editorial{}, fmt.Errorf("editorial %q: %w", id, ErrNotFound)
}

// Vocabulary returns the words of every editorial. A word ID that appears
// in more than one editorial is kept once, at its first occurrence.
func (r *YAMLRepository) Vocabulary(ctx context.Context) ([]VocabularyWord, error) {
	editorials, err := r.Editorials(ctx)
	if err != nil {
		return nil, err
	}
	return CollectVocabulary(editorials), nil
}

// CollectVocabulary flattens the vocabulary of editorials in order, dropping repeated IDs.
func CollectVocabulary(editorials []Editorial) []VocabularyWord {
	seen := make(map[string]struct{})
	var words []VocabularyWord
	for _, editorial := range editorials {
		for _, word := range editorial.Vocabulary {
			if _, ok := seen[word.ID]; ok {
				continue
			}
			seen[word.ID] = struct{}{}
			words = append(words, word)
		}
	}
	return words
}
