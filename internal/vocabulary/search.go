package vocabulary

import (
	"strings"

	"github.com/at-ishikawa/examprep/internal/content"
)

// Search keeps words whose term or meaning contains term, ignoring case.
// An empty term keeps everything.
func Search(words []content.VocabularyWord, term string) []content.VocabularyWord {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return words
	}
	var result []content.VocabularyWord
	for _, w := range words {
		if strings.Contains(strings.ToLower(w.Word), term) || strings.Contains(strings.ToLower(w.Meaning), term) {
			result = append(result, w)
		}
	}
	return result
}

// FilterByDifficulty keeps words of the given difficulty. An empty difficulty keeps everything.
func FilterByDifficulty(words []content.VocabularyWord, difficulty content.Difficulty) []content.VocabularyWord {
	if difficulty == "" {
		return words
	}
	var result []content.VocabularyWord
	for _, w := range words {
		if w.Difficulty == difficulty {
			result = append(result, w)
		}
	}
	return result
}
