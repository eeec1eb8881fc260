package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/at-ishikawa/examprep/internal/assessment"
	"github.com/at-ishikawa/examprep/internal/pdf"
)

var unsafeFileNameChars = regexp.MustCompile(`[^a-z0-9]+`)

// QuizResult is the data a result template renders.
type QuizResult struct {
	Title       string
	UserName    string
	CompletedAt time.Time
	Summary     assessment.ScoreSummary
	Entries     []assessment.ReviewEntry
	PassMark    int
}

// Passed reports whether the score reached the pass mark.
func (r QuizResult) Passed() bool {
	return r.Summary.Percentage >= r.PassMark
}

// Writer renders quiz results as markdown files, optionally converted to PDF.
type Writer struct {
	templatePath string
	directory    string
	convertToPDF bool
}

func NewWriter(templatePath, directory string, convertToPDF bool) *Writer {
	return &Writer{
		templatePath: templatePath,
		directory:    directory,
		convertToPDF: convertToPDF,
	}
}

// Render writes the markdown report of result to output.
func (w *Writer) Render(output io.Writer, result QuizResult) error {
	tmpl, err := parseResultTemplate(w.templatePath)
	if err != nil {
		return fmt.Errorf("parseResultTemplate() > %w", err)
	}
	if err := tmpl.Execute(output, result); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}

// Save writes the report under the writer's directory and returns the path of
// the written file, the PDF when conversion is enabled.
func (w *Writer) Save(result QuizResult) (string, error) {
	if err := os.MkdirAll(w.directory, 0o755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", w.directory, err)
	}

	path := filepath.Join(w.directory, FileName(result.Title, result.CompletedAt))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	if err := w.Render(file, result); err != nil {
		_ = file.Close()
		return "", fmt.Errorf("w.Render() > %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("file.Close() > %w", err)
	}

	if !w.convertToPDF {
		return path, nil
	}
	pdfPath, err := pdf.ConvertMarkdownToPDF(path)
	if err != nil {
		return "", fmt.Errorf("pdf.ConvertMarkdownToPDF() > %w", err)
	}
	return pdfPath, nil
}

// FileName is "<slug>-<yyyymmdd-hhmmss>.md" for a report of title.
func FileName(title string, completedAt time.Time) string {
	slug := strings.Trim(unsafeFileNameChars.ReplaceAllString(strings.ToLower(title), "-"), "-")
	if slug == "" {
		slug = "quiz"
	}
	return fmt.Sprintf("%s-%s.md", slug, completedAt.UTC().Format("20060102-150405"))
}
