// Package assessment implements the learning-session engine shared by
// editorial quizzes, vocabulary quizzes and flashcard reviews.
package assessment

import (
	"fmt"

	"github.com/at-ishikawa/examprep/internal/content"
	"github.com/at-ishikawa/examprep/internal/progress"
)

// Item is something a session presents. It is either a content.Question
// or a content.VocabularyWord.
type Item interface {
	ItemID() string
}

// Mode selects the navigation rules of a session.
type Mode int

const (
	// Linear sessions stop at both ends and complete when advancing past the last item.
	Linear Mode = iota
	// Wrapping sessions cycle through their items and never complete.
	Wrapping
)

func (m Mode) String() string {
	switch m {
	case Linear:
		return "linear"
	case Wrapping:
		return "wrapping"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

type Option func(*Session)

// WithMode sets the navigation mode. Sessions are Linear by default.
func WithMode(mode Mode) Option {
	return func(s *Session) {
		s.mode = mode
	}
}

// WithReviewAfterCompletion lets Retreat reopen a completed linear session.
func WithReviewAfterCompletion() Option {
	return func(s *Session) {
		s.allowReview = true
	}
}

// Session is one pass over a fixed list of items.
// It is owned by a single caller and is not safe for concurrent use.
type Session struct {
	items       []Item
	index       int
	responses   map[int]int
	completed   bool
	mode        Mode
	allowReview bool
}

// Start begins a session at the first item.
func Start(items []Item, opts ...Option) (*Session, error) {
	if len(items) == 0 {
		return nil, ErrEmptyItemSource
	}
	for i, item := range items {
		if err := checkItem(item); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}

	s := &Session{
		items:     append([]Item(nil), items...),
		responses: make(map[int]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func checkItem(item Item) error {
	switch v := item.(type) {
	case content.Question:
		if len(v.Options) < 2 {
			return fmt.Errorf("%w: question %s has %d options", ErrInvalidItem, v.ID, len(v.Options))
		}
		if v.CorrectAnswer < 0 || v.CorrectAnswer >= len(v.Options) {
			return fmt.Errorf("%w: question %s has correct answer %d of %d options", ErrInvalidItem, v.ID, v.CorrectAnswer, len(v.Options))
		}
	case content.VocabularyWord:
	default:
		return fmt.Errorf("%w: unsupported item type %T", ErrInvalidItem, item)
	}
	return nil
}

// Questions converts questions into session items.
func Questions(questions []content.Question) []Item {
	items := make([]Item, 0, len(questions))
	for _, q := range questions {
		items = append(items, q)
	}
	return items
}

// Cards converts vocabulary words into session items.
func Cards(words []content.VocabularyWord) []Item {
	items := make([]Item, 0, len(words))
	for _, w := range words {
		items = append(items, w)
	}
	return items
}

func (s *Session) Current() Item {
	return s.items[s.index]
}

func (s *Session) Index() int {
	return s.index
}

func (s *Session) Len() int {
	return len(s.items)
}

func (s *Session) Mode() Mode {
	return s.mode
}

func (s *Session) Completed() bool {
	return s.completed
}

// Items returns a copy of the session items.
func (s *Session) Items() []Item {
	return append([]Item(nil), s.items...)
}

// Response returns the option selected for the item at index.
func (s *Session) Response(index int) (int, bool) {
	option, ok := s.responses[index]
	return option, ok
}

// Responses returns a copy of the recorded answers keyed by item index.
func (s *Session) Responses() map[int]int {
	responses := make(map[int]int, len(s.responses))
	for k, v := range s.responses {
		responses[k] = v
	}
	return responses
}

// SelectAnswer records option as the answer to the current question,
// replacing any earlier answer.
func (s *Session) SelectAnswer(option int) error {
	if s.completed {
		return ErrSessionCompleted
	}
	q, ok := s.Current().(content.Question)
	if !ok {
		return fmt.Errorf("%w: item %s takes no answer", ErrInvalidResponseIndex, s.Current().ItemID())
	}
	if option < 0 || option >= len(q.Options) {
		return fmt.Errorf("%w: option %d of %d", ErrInvalidResponseIndex, option, len(q.Options))
	}
	s.responses[s.index] = option
	return nil
}

// Advance moves to the next item. In a linear session, advancing from the
// last item completes the session. It reports whether the state changed.
func (s *Session) Advance() bool {
	if s.mode == Wrapping {
		s.index = (s.index + 1) % len(s.items)
		return true
	}
	if s.completed {
		return false
	}
	if s.index < len(s.items)-1 {
		s.index++
		return true
	}
	s.completed = true
	return true
}

// Retreat moves to the previous item. A completed linear session is reopened
// at its last item when review is allowed; the index stays at len-1 so that
// Advance completes it again. It reports whether the state changed.
func (s *Session) Retreat() bool {
	if s.mode == Wrapping {
		s.index = (s.index - 1 + len(s.items)) % len(s.items)
		return true
	}
	if s.completed {
		if !s.allowReview {
			return false
		}
		s.completed = false
		return true
	}
	if s.index == 0 {
		return false
	}
	s.index--
	return true
}

// Progress is the position of the current item as a percentage, for progress bars.
func (s *Session) Progress() int {
	return progress.Percentage(s.index+1, len(s.items))
}

// Score scores the recorded answers. mastery may be nil when the session has no cards.
func (s *Session) Score(mastery *progress.MasteryState) ScoreSummary {
	return Score(s.items, s.responses, mastery)
}

// Review lists per-item results for the results screen.
func (s *Session) Review(mastery *progress.MasteryState) []ReviewEntry {
	entries := make([]ReviewEntry, 0, len(s.items))
	for i, item := range s.items {
		entry := ReviewEntry{
			Index:     i,
			ItemID:    item.ItemID(),
			IsCorrect: isCorrect(item, i, s.responses, mastery),
		}
		switch v := item.(type) {
		case content.Question:
			entry.Prompt = v.Prompt
			entry.CorrectAnswer = v.Options[v.CorrectAnswer]
			entry.Explanation = v.Explanation
			if option, ok := s.responses[i]; ok {
				entry.Answered = true
				entry.SelectedAnswer = v.Options[option]
			}
		case content.VocabularyWord:
			entry.Prompt = v.Word
			entry.CorrectAnswer = v.Meaning
			entry.Answered = entry.IsCorrect
		}
		entries = append(entries, entry)
	}
	return entries
}

// ReviewEntry is the outcome of one item.
type ReviewEntry struct {
	Index          int
	ItemID         string
	Prompt         string
	SelectedAnswer string
	Answered       bool
	CorrectAnswer  string
	IsCorrect      bool
	Explanation    string
}
