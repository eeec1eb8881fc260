// Package vocabulary matches editorial text against vocabulary cards and
// builds vocabulary quizzes.
package vocabulary

import (
	"regexp"
	"strings"

	"github.com/at-ishikawa/examprep/internal/content"
)

var (
	tokenPattern = regexp.MustCompile(`\s+|\S+`)
	punctuation  = strings.NewReplacer(".", "", ",", "", "!", "", "?", "", ";", "", ":", "")
)

// Token is a run of text. Word is set when the token names a vocabulary card.
// Whitespace is kept as its own tokens so joining every Text restores the input.
type Token struct {
	Text string
	Word *content.VocabularyWord
}

// Normalize strips sentence punctuation and case-folds a token.
func Normalize(token string) string {
	return strings.ToLower(punctuation.Replace(token))
}

// Match splits text into tokens and links each word token to the first card
// whose term equals the normalized token.
func Match(text string, words []content.VocabularyWord) []Token {
	terms := make(map[string]int, len(words))
	for i := len(words) - 1; i >= 0; i-- {
		terms[strings.ToLower(words[i].Word)] = i
	}

	parts := tokenPattern.FindAllString(text, -1)
	tokens := make([]Token, 0, len(parts))
	for _, part := range parts {
		token := Token{Text: part}
		if strings.TrimSpace(part) != "" {
			if i, ok := terms[Normalize(part)]; ok {
				token.Word = &words[i]
			}
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// Highlighted returns the distinct cards matched in tokens, in order of first appearance.
func Highlighted(tokens []Token) []content.VocabularyWord {
	seen := make(map[string]struct{})
	var result []content.VocabularyWord
	for _, token := range tokens {
		if token.Word == nil {
			continue
		}
		if _, ok := seen[token.Word.ID]; ok {
			continue
		}
		seen[token.Word.ID] = struct{}{}
		result = append(result, *token.Word)
	}
	return result
}
