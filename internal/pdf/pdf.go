// Package pdf renders markdown result reports as A4 PDF documents.
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

var errEmptyMarkdown = errors.New("markdown is empty")

// Write renders markdown into pdfPath, creating its directory, and returns the
// absolute path of the PDF.
func Write(markdown []byte, pdfPath string) (string, error) {
	if len(bytes.TrimSpace(markdown)) == 0 {
		return "", errEmptyMarkdown
	}
	if err := os.MkdirAll(filepath.Dir(pdfPath), 0o755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(pdfPath), err)
	}

	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(markdown); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}

// ConvertMarkdownToPDF renders a saved .md report into "<name>.pdf" beside it.
func ConvertMarkdownToPDF(markdownPath string) (string, error) {
	if filepath.Ext(markdownPath) != ".md" {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	markdown, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}
	return Write(markdown, strings.TrimSuffix(markdownPath, ".md")+".pdf")
}
