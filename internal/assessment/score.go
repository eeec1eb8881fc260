package assessment

import (
	"github.com/at-ishikawa/examprep/internal/content"
	"github.com/at-ishikawa/examprep/internal/progress"
)

// ScoreSummary is derived from a session and never stored.
type ScoreSummary struct {
	Total      int
	Correct    int
	Percentage int
	Results    []bool
}

// Score counts correct items. A question is correct when the response for its
// index equals the correct answer; a vocabulary card is correct when its ID is
// mastered. Missing responses are incorrect.
func Score(items []Item, responses map[int]int, mastery *progress.MasteryState) ScoreSummary {
	summary := ScoreSummary{
		Total:   len(items),
		Results: make([]bool, len(items)),
	}
	for i, item := range items {
		if isCorrect(item, i, responses, mastery) {
			summary.Results[i] = true
			summary.Correct++
		}
	}
	summary.Percentage = progress.Percentage(summary.Correct, summary.Total)
	return summary
}

func isCorrect(item Item, index int, responses map[int]int, mastery *progress.MasteryState) bool {
	switch v := item.(type) {
	case content.Question:
		option, ok := responses[index]
		return ok && option == v.CorrectAnswer
	case content.VocabularyWord:
		return mastery.Has(v.ID)
	}
	return false
}
