package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/examprep/internal/content"
)

func TestSearch(t *testing.T) {
	words := []content.VocabularyWord{
		{ID: "1", Word: "encompass", Meaning: "to include or contain"},
		{ID: "2", Word: "robust", Meaning: "strong and energetic"},
		{ID: "3", Word: "imperative", Meaning: "of vital importance"},
	}

	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "empty term", term: "", want: []string{"1", "2", "3"}},
		{name: "word prefix", term: "ROB", want: []string{"2"}},
		{name: "meaning", term: "vital", want: []string{"3"}},
		// "en" is in the word encompass and only in the meaning of robust.
		{name: "word or meaning", term: "en", want: []string{"1", "2"}},
		{name: "no match", term: "zebra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids []string
			for _, w := range Search(words, tt.term) {
				ids = append(ids, w.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFilterByDifficulty(t *testing.T) {
	words := []content.VocabularyWord{
		{ID: "1", Difficulty: content.DifficultyEasy},
		{ID: "2", Difficulty: content.DifficultyHard},
		{ID: "3", Difficulty: content.DifficultyHard},
	}

	assert.Len(t, FilterByDifficulty(words, ""), 3)
	assert.Len(t, FilterByDifficulty(words, content.DifficultyHard), 2)
	assert.Empty(t, FilterByDifficulty(words, content.DifficultyMedium))
}
