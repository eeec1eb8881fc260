package vocabulary

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/at-ishikawa/examprep/internal/content"
)

const (
	DefaultQuizSize    = 5
	DefaultDistractors = 3
)

// BuildQuiz turns the first size words into multiple choice questions asking
// for each word's meaning. The options are the meaning and the meanings of the
// first distractors other words, shuffled once here so the order stays fixed
// for the whole session.
func BuildQuiz(words []content.VocabularyWord, size, distractors int, rng *rand.Rand) ([]content.Question, error) {
	if size <= 0 {
		size = DefaultQuizSize
	}
	if distractors <= 0 {
		distractors = DefaultDistractors
	}
	if len(words) < 2 {
		return nil, errors.New("a vocabulary quiz needs at least two words")
	}
	if size > len(words) {
		size = len(words)
	}

	questions := make([]content.Question, 0, size)
	for _, word := range words[:size] {
		options := []string{word.Meaning}
		seen := map[string]struct{}{strings.ToLower(word.Meaning): {}}
		for _, other := range words {
			if len(options) > distractors {
				break
			}
			if other.Word == word.Word {
				continue
			}
			key := strings.ToLower(other.Meaning)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			options = append(options, other.Meaning)
		}
		if len(options) < 2 {
			return nil, fmt.Errorf("no distinct distractor for %q", word.Word)
		}

		rng.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})
		correct := 0
		for i, option := range options {
			if option == word.Meaning {
				correct = i
				break
			}
		}

		questions = append(questions, content.Question{
			ID:            "vocabulary-" + word.ID,
			Prompt:        fmt.Sprintf(`What does "%s" mean?`, word.Word),
			Options:       options,
			CorrectAnswer: correct,
		})
	}
	return questions, nil
}
