package vocabulary

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/examprep/internal/assessment"
	"github.com/at-ishikawa/examprep/internal/content"
)

func quizWords() []content.VocabularyWord {
	return []content.VocabularyWord{
		{ID: "1", Word: "encompass", Meaning: "to include"},
		{ID: "2", Word: "robust", Meaning: "strong"},
		{ID: "3", Word: "marginalized", Meaning: "treated as insignificant"},
		{ID: "4", Word: "intermittent", Meaning: "not continuous"},
		{ID: "5", Word: "imperative", Meaning: "of vital importance"},
		{ID: "6", Word: "ubiquitous", Meaning: "found everywhere"},
	}
}

func TestBuildQuiz(t *testing.T) {
	words := quizWords()

	questions, err := BuildQuiz(words, 5, 3, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Len(t, questions, 5)

	for i, q := range questions {
		word := words[i]
		assert.Equal(t, "vocabulary-"+word.ID, q.ID)
		assert.Equal(t, `What does "`+word.Word+`" mean?`, q.Prompt)
		assert.Len(t, q.Options, 4)
		assert.Equal(t, word.Meaning, q.Options[q.CorrectAnswer])
	}
	assert.ElementsMatch(t, []string{"to include", "strong", "treated as insignificant", "not continuous"}, questions[3].Options)
}

func TestBuildQuiz_OptionOrderIsFixed(t *testing.T) {
	questions, err := BuildQuiz(quizWords(), 5, 3, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	s, err := assessment.Start(assessment.Questions(questions))
	require.NoError(t, err)

	first := s.Current().(content.Question)
	options := append([]string(nil), first.Options...)
	require.NoError(t, s.SelectAnswer(first.CorrectAnswer))
	s.Advance()
	s.Retreat()

	again := s.Current().(content.Question)
	assert.Equal(t, options, again.Options)
	assert.Equal(t, 100, assessment.Score(s.Items()[:1], s.Responses(), nil).Percentage)
}

func TestBuildQuiz_Defaults(t *testing.T) {
	questions, err := BuildQuiz(quizWords(), 0, 0, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Len(t, questions, DefaultQuizSize)
	assert.Len(t, questions[0].Options, DefaultDistractors+1)
}

func TestBuildQuiz_SmallDeck(t *testing.T) {
	words := quizWords()[:2]

	questions, err := BuildQuiz(words, 5, 3, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Len(t, questions[0].Options, 2)
}

func TestBuildQuiz_Errors(t *testing.T) {
	_, err := BuildQuiz(quizWords()[:1], 5, 3, rand.New(rand.NewSource(1)))
	assert.Error(t, err)

	same := []content.VocabularyWord{
		{ID: "1", Word: "big", Meaning: "large"},
		{ID: "2", Word: "huge", Meaning: "Large"},
	}
	_, err = BuildQuiz(same, 5, 3, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}
