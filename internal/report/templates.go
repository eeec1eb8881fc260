package report

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

const fallbackTemplateName = "quiz-result.md.go.tmpl"

//go:embed templates/quiz-result.md.go.tmpl
var fallbackResultTemplate string

var funcMap = template.FuncMap{
	"join": strings.Join,
	"add1": func(i int) int { return i + 1 },
}

// parseResultTemplate uses templatePath when it exists and parses, and the
// embedded template otherwise.
func parseResultTemplate(templatePath string) (*template.Template, error) {
	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			tmpl, err := template.New(filepath.Base(templatePath)).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a result template, using the embedded one",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(fallbackTemplateName).
		Funcs(funcMap).
		Parse(fallbackResultTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}
