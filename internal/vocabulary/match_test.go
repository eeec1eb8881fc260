package vocabulary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/examprep/internal/content"
)

func TestMatch(t *testing.T) {
	words := []content.VocabularyWord{
		{ID: "1", Word: "robust"},
		{ID: "2", Word: "Encompass"},
		{ID: "3", Word: "india's"},
	}

	tests := []struct {
		name        string
		text        string
		wantMatched []string
	}{
		{
			name:        "punctuation is stripped",
			text:        "India's robust infrastructure.",
			wantMatched: []string{"India's:3", "robust:1"},
		},
		{
			name:        "case is folded",
			text:        "It ENCOMPASSES and encompasses; it ENCOMPASS!",
			wantMatched: []string{"ENCOMPASS!:2"},
		},
		{
			name:        "substrings do not match",
			text:        "robustness matters",
			wantMatched: nil,
		},
		{
			name: "hyphenated text does not match",
			text: "a robust-looking plan",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Match(tt.text, words)

			var matched []string
			var rebuilt strings.Builder
			for _, token := range tokens {
				rebuilt.WriteString(token.Text)
				if token.Word != nil {
					matched = append(matched, token.Text+":"+token.Word.ID)
				}
			}
			assert.Equal(t, tt.wantMatched, matched)
			assert.Equal(t, tt.text, rebuilt.String())
		})
	}
}

func TestMatch_SingleTerm(t *testing.T) {
	tokens := Match("India's robust infrastructure.", []content.VocabularyWord{{ID: "1", Word: "robust"}})

	var matched []string
	for _, token := range tokens {
		if token.Word != nil {
			matched = append(matched, token.Text)
		}
	}
	assert.Equal(t, []string{"robust"}, matched)
}

func TestMatch_FirstCardWins(t *testing.T) {
	words := []content.VocabularyWord{
		{ID: "first", Word: "robust"},
		{ID: "second", Word: "Robust"},
	}

	tokens := Match("robust", words)

	require.Len(t, tokens, 1)
	require.NotNil(t, tokens[0].Word)
	assert.Equal(t, "first", tokens[0].Word.ID)
}

func TestHighlighted(t *testing.T) {
	words := []content.VocabularyWord{
		{ID: "1", Word: "robust"},
		{ID: "2", Word: "imperative"},
	}

	got := Highlighted(Match("It is imperative. Robust, robust plans.", words))

	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, "1", got[1].ID)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "robust", Normalize("Robust,"))
	assert.Equal(t, "india's", Normalize("India's"))
	assert.Equal(t, "", Normalize("?!"))
}
