package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/examprep/internal/content"
	"github.com/at-ishikawa/examprep/internal/learning"
)

func TestNewEditorialCommand(t *testing.T) {
	cmd := newEditorialCommand()

	assert.Equal(t, "editorial", cmd.Use)
	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"list", "read", "quiz"}, names)
}

func TestNewEditorialListCommand(t *testing.T) {
	cmd := newEditorialListCommand()

	assert.Equal(t, "list", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	categoryFlag := cmd.Flags().Lookup("category")
	require.NotNil(t, categoryFlag)
	assert.Equal(t, content.CategoryAll, categoryFlag.DefValue)
	assert.NotNil(t, cmd.Flags().Lookup("search"))
}

func TestNewEditorialListCommand_RunE_configError(t *testing.T) {
	cfgPath := setupBrokenConfigFile(t)
	setConfigFile(t, cfgPath)

	cmd := newEditorialListCommand()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestEditorialList(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantContain []string
		wantMissing []string
	}{
		{
			name:        "all editorials",
			args:        []string{"editorial", "list"},
			wantContain: []string{"Digital India Initiative", "Climate Change and Renewable Energy"},
		},
		{
			name:        "filtered by category",
			args:        []string{"editorial", "list", "--category", "environment"},
			wantContain: []string{"Climate Change and Renewable Energy"},
			wantMissing: []string{"Digital India Initiative"},
		},
		{
			name:        "no match",
			args:        []string{"editorial", "list", "--search", "cricket"},
			wantContain: []string{"No editorials found."},
		},
	}

	setupConfigFile(t, "")
	login(t, "student@example.com")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			for _, want := range tt.wantContain {
				assert.Contains(t, got, want)
			}
			for _, missing := range tt.wantMissing {
				assert.NotContains(t, got, missing)
			}
		})
	}
}

func TestEditorialRead(t *testing.T) {
	setupConfigFile(t, "")
	login(t, "student@example.com")

	got, err := execute(t, "", "editorial", "read", "1")
	require.NoError(t, err)
	assert.Contains(t, got, "Digital India Initiative: Transforming Governance")
	assert.Contains(t, got, "Take the quiz: examprep editorial quiz 1")

	_, err = execute(t, "", "editorial", "read", "404")
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestEditorialQuiz(t *testing.T) {
	dir := setupConfigFile(t, "")
	login(t, "student@example.com")

	got, err := execute(t, "1\nn\n2\nn\n3\nn\n", "editorial", "quiz", "1", "--report")
	require.NoError(t, err)
	assert.Contains(t, got, "Starting the quiz for Digital India Initiative: Transforming Governance with 3 questions")
	assert.Contains(t, got, "Quiz Complete!")
	assert.Contains(t, got, "Score: 100% (3 of 3 correct)")
	assert.Contains(t, got, "Report saved to "+filepath.Join(dir, "reports"))

	reports, err := os.ReadDir(filepath.Join(dir, "reports"))
	require.NoError(t, err)
	assert.Len(t, reports, 1)

	attempts, err := learning.NewYAMLRepository(filepath.Join(dir, "learning")).FindByUser(t.Context(), "5")
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, learning.ActivityEditorialQuiz, attempts[0].Activity)
	assert.Equal(t, "1", attempts[0].ReferenceID)
	assert.Equal(t, 100, attempts[0].Percentage)

	got, err = execute(t, "", "dashboard")
	require.NoError(t, err)
	assert.Contains(t, got, "Quizzes completed: 1")
	assert.Contains(t, got, "Average score:     100%")
}

func TestEditorialQuiz_PDFFromConfig(t *testing.T) {
	dir := setupConfigFile(t, "")
	// outputs is the last section of the config.
	file, err := os.OpenFile(configFile, os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = file.WriteString("  pdf: true\n")
	require.NoError(t, err)
	require.NoError(t, file.Close())
	login(t, "student@example.com")

	got, err := execute(t, "1\nn\n2\nn\n3\nn\n", "editorial", "quiz", "1")
	require.NoError(t, err)
	assert.Contains(t, got, "Report saved to "+filepath.Join(dir, "reports"))

	pdfs, err := filepath.Glob(filepath.Join(dir, "reports", "*.pdf"))
	require.NoError(t, err)
	assert.Len(t, pdfs, 1)
}

func TestEditorialQuiz_Abandoned(t *testing.T) {
	dir := setupConfigFile(t, "")
	login(t, "student@example.com")

	got, err := execute(t, "1\nq\n", "editorial", "quiz", "1")
	require.NoError(t, err)
	assert.Contains(t, got, "Quiz abandoned.")

	attempts, err := learning.NewYAMLRepository(filepath.Join(dir, "learning")).FindByUser(t.Context(), "5")
	require.NoError(t, err)
	assert.Empty(t, attempts)
}
