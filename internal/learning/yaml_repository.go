package learning

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/at-ishikawa/examprep/internal/yamlfile"
)

// YAMLRepository keeps the attempts of each user in <directory>/<user id>.yml.
type YAMLRepository struct {
	directory string
}

func NewYAMLRepository(directory string) *YAMLRepository {
	return &YAMLRepository{directory: directory}
}

func (r *YAMLRepository) path(userID string) (string, error) {
	if userID == "" || strings.ContainsAny(userID, `/\`) || strings.HasPrefix(userID, ".") {
		return "", fmt.Errorf("invalid user id %q", userID)
	}
	return filepath.Join(r.directory, userID+".yml"), nil
}

func (r *YAMLRepository) FindByUser(ctx context.Context, userID string) ([]Attempt, error) {
	path, err := r.path(userID)
	if err != nil {
		return nil, err
	}
	attempts, err := yamlfile.ReadOptional[[]Attempt](path)
	if err != nil {
		return nil, fmt.Errorf("yamlfile.ReadOptional() > %w", err)
	}
	sortAttempts(attempts)
	return attempts, nil
}

// FindAll reads every user file in the directory. A missing directory has no attempts.
func (r *YAMLRepository) FindAll(ctx context.Context) ([]Attempt, error) {
	entries, err := os.ReadDir(r.directory)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("os.ReadDir(%s) > %w", r.directory, err)
	}

	var all []Attempt
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yml" {
			continue
		}
		attempts, err := yamlfile.Read[[]Attempt](filepath.Join(r.directory, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("yamlfile.Read() > %w", err)
		}
		all = append(all, attempts...)
	}
	sortAttempts(all)
	return all, nil
}

func sortAttempts(attempts []Attempt) {
	sort.SliceStable(attempts, func(i, j int) bool {
		if attempts[i].CompletedAt.Equal(attempts[j].CompletedAt) {
			return attempts[i].ID < attempts[j].ID
		}
		return attempts[i].CompletedAt.Before(attempts[j].CompletedAt)
	})
}

func (r *YAMLRepository) BatchCreate(ctx context.Context, attempts []Attempt) error {
	byUser := make(map[string][]Attempt)
	var users []string
	for _, a := range attempts {
		if _, ok := byUser[a.UserID]; !ok {
			users = append(users, a.UserID)
		}
		byUser[a.UserID] = append(byUser[a.UserID], a)
	}

	for _, userID := range users {
		path, err := r.path(userID)
		if err != nil {
			return err
		}
		existing, err := yamlfile.ReadOptional[[]Attempt](path)
		if err != nil {
			return fmt.Errorf("yamlfile.ReadOptional() > %w", err)
		}
		if err := yamlfile.Write(path, append(existing, byUser[userID]...)); err != nil {
			return fmt.Errorf("yamlfile.Write() > %w", err)
		}
	}
	return nil
}
