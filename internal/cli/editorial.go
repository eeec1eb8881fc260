package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/examprep/internal/content"
	"github.com/at-ishikawa/examprep/internal/vocabulary"
)

var (
	headingColor   = color.New(color.Bold, color.Underline)
	highlightColor = color.New(color.FgCyan, color.Bold)
	faintColor     = color.New(color.Faint)
)

// WriteEditorialList prints one line per editorial.
func WriteEditorialList(w io.Writer, editorials []content.Editorial) {
	if len(editorials) == 0 {
		_, _ = fmt.Fprintln(w, "No editorials found.")
		return
	}
	for _, editorial := range editorials {
		status := ""
		if editorial.Completed {
			status = " ✓"
			if editorial.Score != nil {
				status = fmt.Sprintf(" ✓ %d%%", *editorial.Score)
			}
		}
		_, _ = fmt.Fprintf(w, "%-4s %s%s\n", editorial.ID, color.New(color.Bold).Sprint(editorial.Title), status)
		_, _ = fmt.Fprintf(w, "     %s  %s  %d min read  %d words  %d questions\n",
			editorial.Date,
			editorial.Category,
			editorial.ReadTime,
			len(editorial.Vocabulary),
			len(editorial.Quiz.Questions),
		)
	}
}

// WriteEditorial prints the article with its vocabulary terms highlighted,
// followed by the vocabulary sidebar.
func WriteEditorial(w io.Writer, editorial content.Editorial) {
	_, _ = headingColor.Fprintln(w, editorial.Title)
	_, _ = faintColor.Fprintf(w, "%s  %s  %d min read\n\n", editorial.Date, editorial.Category, editorial.ReadTime)

	tokens := vocabulary.Match(editorial.Content, editorial.Vocabulary)
	var body strings.Builder
	for _, token := range tokens {
		if token.Word != nil {
			body.WriteString(highlightColor.Sprint(token.Text))
			continue
		}
		body.WriteString(token.Text)
	}
	_, _ = fmt.Fprintln(w, body.String())
	_, _ = fmt.Fprintln(w)

	highlighted := vocabulary.Highlighted(tokens)
	_, _ = headingColor.Fprintf(w, "Vocabulary (%d in this article)\n", len(highlighted))
	for _, word := range editorial.Vocabulary {
		_, _ = fmt.Fprintf(w, "- %s [%s]: %s\n", color.New(color.Bold).Sprint(word.Word), word.Difficulty, word.Meaning)
	}
	if len(editorial.Quiz.Questions) > 0 {
		_, _ = fmt.Fprintf(w, "\nTake the quiz: examprep editorial quiz %s\n", editorial.ID)
	}
}
