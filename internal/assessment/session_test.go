package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/examprep/internal/content"
	"github.com/at-ishikawa/examprep/internal/progress"
)

func questions(correct ...int) []Item {
	qs := make([]content.Question, 0, len(correct))
	for i, answer := range correct {
		qs = append(qs, content.Question{
			ID:            string(rune('a' + i)),
			Prompt:        "question",
			Options:       []string{"zero", "one", "two", "three"},
			CorrectAnswer: answer,
		})
	}
	return Questions(qs)
}

func cards(ids ...string) []Item {
	words := make([]content.VocabularyWord, 0, len(ids))
	for _, id := range ids {
		words = append(words, content.VocabularyWord{ID: id, Word: "word" + id, Meaning: "meaning" + id})
	}
	return Cards(words)
}

func TestStart(t *testing.T) {
	tests := []struct {
		name    string
		items   []Item
		wantErr error
	}{
		{name: "empty items", items: nil, wantErr: ErrEmptyItemSource},
		{name: "questions", items: questions(0, 1)},
		{name: "cards", items: cards("1")},
		{
			name:    "correct answer out of range",
			items:   Questions([]content.Question{{ID: "q", Options: []string{"a", "b"}, CorrectAnswer: 2}}),
			wantErr: ErrInvalidItem,
		},
		{
			name:    "single option",
			items:   Questions([]content.Question{{ID: "q", Options: []string{"a"}}}),
			wantErr: ErrInvalidItem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Start(tt.items)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 0, s.Index())
			assert.False(t, s.Completed())
			assert.Empty(t, s.Responses())
			assert.Equal(t, Linear, s.Mode())
		})
	}
}

func TestSession_SelectAnswer(t *testing.T) {
	t.Run("records and overwrites the answer", func(t *testing.T) {
		s, err := Start(questions(0, 1))
		require.NoError(t, err)

		require.NoError(t, s.SelectAnswer(2))
		require.NoError(t, s.SelectAnswer(0))

		got, ok := s.Response(0)
		assert.True(t, ok)
		assert.Equal(t, 0, got)
		_, ok = s.Response(1)
		assert.False(t, ok)
	})

	t.Run("rejects options out of range", func(t *testing.T) {
		s, err := Start(questions(0))
		require.NoError(t, err)

		assert.ErrorIs(t, s.SelectAnswer(4), ErrInvalidResponseIndex)
		assert.ErrorIs(t, s.SelectAnswer(-1), ErrInvalidResponseIndex)
		assert.Empty(t, s.Responses())
	})

	t.Run("rejects answers on cards", func(t *testing.T) {
		s, err := Start(cards("1"))
		require.NoError(t, err)

		assert.ErrorIs(t, s.SelectAnswer(0), ErrInvalidResponseIndex)
	})

	t.Run("rejects answers after completion", func(t *testing.T) {
		s, err := Start(questions(0))
		require.NoError(t, err)
		s.Advance()
		require.True(t, s.Completed())

		assert.ErrorIs(t, s.SelectAnswer(0), ErrSessionCompleted)
	})
}

func TestSession_LinearNavigation(t *testing.T) {
	s, err := Start(questions(0, 1, 2))
	require.NoError(t, err)

	assert.False(t, s.Retreat(), "retreat at the first item is a no-op")
	assert.Equal(t, 0, s.Index())

	assert.True(t, s.Advance())
	assert.True(t, s.Advance())
	assert.Equal(t, 2, s.Index())
	assert.False(t, s.Completed())

	assert.True(t, s.Advance())
	assert.True(t, s.Completed())
	assert.Equal(t, 2, s.Index())

	assert.False(t, s.Advance())
	assert.False(t, s.Retreat(), "review is not allowed")
	assert.True(t, s.Completed())
}

func TestSession_AdvanceThenRetreatRestoresState(t *testing.T) {
	for index := 0; index < 3; index++ {
		s, err := Start(questions(0, 1, 2, 3))
		require.NoError(t, err)
		for range index {
			s.Advance()
		}

		s.Advance()
		s.Retreat()

		assert.Equal(t, index, s.Index())
		assert.False(t, s.Completed())
	}
}

func TestSession_ReviewAfterCompletion(t *testing.T) {
	s, err := Start(questions(0, 1), WithReviewAfterCompletion())
	require.NoError(t, err)
	require.NoError(t, s.SelectAnswer(0))
	s.Advance()
	s.Advance()
	require.True(t, s.Completed())

	// Reopening keeps the last item current, so Advance completes again.
	assert.True(t, s.Retreat())
	assert.False(t, s.Completed())
	assert.Equal(t, s.Len()-1, s.Index())
	assert.True(t, s.Advance())
	assert.True(t, s.Completed())
	assert.True(t, s.Retreat())
	assert.Equal(t, s.Len()-1, s.Index())

	assert.True(t, s.Retreat())
	assert.Equal(t, 0, s.Index())
	got, ok := s.Response(0)
	assert.True(t, ok)
	assert.Equal(t, 0, got)
}

func TestSession_WrappingNavigation(t *testing.T) {
	s, err := Start(cards("1", "2", "3"), WithMode(Wrapping))
	require.NoError(t, err)

	for range s.Len() {
		assert.True(t, s.Advance())
		assert.False(t, s.Completed())
	}
	assert.Equal(t, 0, s.Index())

	assert.True(t, s.Retreat())
	assert.Equal(t, 2, s.Index())
	assert.Equal(t, "3", s.Current().ItemID())
}

func TestSession_Progress(t *testing.T) {
	s, err := Start(questions(0, 0, 0))
	require.NoError(t, err)

	assert.Equal(t, 33, s.Progress())
	s.Advance()
	assert.Equal(t, 67, s.Progress())
	s.Advance()
	assert.Equal(t, 100, s.Progress())
}

func TestSession_Items_IsACopy(t *testing.T) {
	items := questions(0, 1)
	s, err := Start(items)
	require.NoError(t, err)

	items[0] = content.Question{ID: "replaced", Options: []string{"a", "b"}}
	got := s.Items()
	got[1] = nil

	assert.Equal(t, "a", s.Current().ItemID())
	s.Advance()
	assert.Equal(t, "b", s.Current().ItemID())
}

func TestSession_Review(t *testing.T) {
	items := append(Questions([]content.Question{
		{ID: "q1", Prompt: "First?", Options: []string{"yes", "no"}, CorrectAnswer: 0, Explanation: "because"},
		{ID: "q2", Prompt: "Second?", Options: []string{"yes", "no"}, CorrectAnswer: 1},
	}), cards("w1")...)
	s, err := Start(items)
	require.NoError(t, err)
	require.NoError(t, s.SelectAnswer(1))

	got := s.Review(progress.NewMasteryState("w1"))

	assert.Equal(t, []ReviewEntry{
		{Index: 0, ItemID: "q1", Prompt: "First?", SelectedAnswer: "no", Answered: true, CorrectAnswer: "yes", Explanation: "because"},
		{Index: 1, ItemID: "q2", Prompt: "Second?", CorrectAnswer: "no"},
		{Index: 2, ItemID: "w1", Prompt: "wordw1", Answered: true, CorrectAnswer: "meaningw1", IsCorrect: true},
	}, got)
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "linear", Linear.String())
	assert.Equal(t, "wrapping", Wrapping.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
}
