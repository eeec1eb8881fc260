package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertMarkdownToPDF(t *testing.T) {
	tests := []struct {
		name       string
		setupFile  func(t *testing.T) string
		wantErrMsg string
	}{
		{
			name:       "invalid extension",
			setupFile:  func(t *testing.T) string { return "result.txt" },
			wantErrMsg: "input file must have .md extension",
		},
		{
			name:       "file not found",
			setupFile:  func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.md") },
			wantErrMsg: "os.ReadFile",
		},
		{
			name: "quiz report",
			setupFile: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "digital-india-quiz.md")
				content := []byte("# Digital India Quiz\n\n- Score: 2/3 (67%)\n\n## Review\n\n### 1. What is UPI?\n\nCorrect\n")
				require.NoError(t, os.WriteFile(path, content, 0o644))
				return path
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pdfPath, err := ConvertMarkdownToPDF(tt.setupFile(t))
			if tt.wantErrMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, ".pdf", filepath.Ext(pdfPath))
			_, err = os.Stat(pdfPath)
			assert.NoError(t, err)
		})
	}
}

func TestWrite(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		wantErr  error
	}{
		{
			name:     "blank markdown",
			markdown: " \n\n",
			wantErr:  errEmptyMarkdown,
		},
		{
			name:     "into a missing directory",
			markdown: "# Vocabulary Quiz\n\n- Score: 5/5 (100%)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pdfPath := filepath.Join(t.TempDir(), "reports", "vocabulary-quiz.pdf")
			got, err := Write([]byte(tt.markdown), pdfPath)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, pdfPath, got)
			info, err := os.Stat(got)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}
