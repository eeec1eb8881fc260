package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/at-ishikawa/examprep/internal/content"
	"github.com/at-ishikawa/examprep/internal/progress"
)

// WriteVocabularyList prints the words with their meanings. Mastered words
// are marked when mastery is given.
func WriteVocabularyList(w io.Writer, words []content.VocabularyWord, mastery *progress.MasteryState) {
	if len(words) == 0 {
		_, _ = fmt.Fprintln(w, "No words found.")
		return
	}
	for _, word := range words {
		marker := " "
		if mastery.Has(word.ID) {
			marker = "✓"
		}
		_, _ = fmt.Fprintf(w, "%s %s [%s]", marker, color.New(color.Bold).Sprint(word.Word), word.Difficulty)
		if word.Pronunciation != "" {
			_, _ = fmt.Fprintf(w, " %s", word.Pronunciation)
		}
		_, _ = fmt.Fprintf(w, "\n  %s\n", word.Meaning)
		if word.Example != "" {
			_, _ = fmt.Fprintf(w, "  %s\n", color.New(color.Italic).Sprint(word.Example))
		}
	}

	if mastery != nil {
		ids := make([]string, 0, len(words))
		for _, word := range words {
			ids = append(ids, word.ID)
		}
		summary := progress.Summarize(ids, mastery)
		_, _ = fmt.Fprintf(w, "\nMastered %d of %d words (%d%%), %d still learning\n",
			summary.Mastered, summary.Total, summary.Percentage, summary.Learning)
	}
}
