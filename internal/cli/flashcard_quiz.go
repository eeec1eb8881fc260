package cli

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/examprep/internal/assessment"
	"github.com/at-ishikawa/examprep/internal/content"
	"github.com/at-ishikawa/examprep/internal/identity"
	"github.com/at-ishikawa/examprep/internal/learning"
	"github.com/at-ishikawa/examprep/internal/progress"
	"github.com/at-ishikawa/examprep/internal/speech"
)

// FlashcardQuizCLI manages the interactive flashcard review of a vocabulary deck
type FlashcardQuizCLI struct {
	*InteractiveQuizCLI
	user        *identity.User
	referenceID string
	title       string
	session     *assessment.Session
	deckIDs     []string
	mastery     *progress.MasteryState
	flipped     bool
	speaker     speech.Speaker
	speaking    <-chan struct{}
	attempts    learning.Repository
}

// NewFlashcardQuizCLI starts a wrapping deck over words. mastery holds the
// words already mastered and is updated in place. attempts may be nil.
// MasterySummary counts only the mastered IDs that are in this deck, so marks
// carried in mastery for other words are kept but not counted.
func NewFlashcardQuizCLI(
	base *InteractiveQuizCLI,
	user *identity.User,
	referenceID string,
	title string,
	words []content.VocabularyWord,
	mastery *progress.MasteryState,
	speaker speech.Speaker,
	attempts learning.Repository,
) (*FlashcardQuizCLI, error) {
	session, err := assessment.Start(assessment.Cards(words), assessment.WithMode(assessment.Wrapping))
	if err != nil {
		return nil, fmt.Errorf("assessment.Start() > %w", err)
	}
	if mastery == nil {
		mastery = progress.NewMasteryState()
	}
	if speaker == nil {
		speaker = speech.NopSpeaker{}
	}

	deckIDs := make([]string, 0, len(words))
	for _, word := range words {
		deckIDs = append(deckIDs, word.ID)
	}
	return &FlashcardQuizCLI{
		InteractiveQuizCLI: base,
		user:               user,
		referenceID:        referenceID,
		title:              title,
		session:            session,
		deckIDs:            deckIDs,
		mastery:            mastery,
		speaker:            speaker,
		attempts:           attempts,
	}, nil
}

// MasterySummary reports mastery over this deck.
func (r *FlashcardQuizCLI) MasterySummary() progress.MasterySummary {
	return progress.Summarize(r.deckIDs, r.mastery)
}

func (r *FlashcardQuizCLI) Session(ctx context.Context) error {
	card := r.session.Current().(content.VocabularyWord)
	r.displayCard(card)

	command, err := r.readCommand()
	if err != nil {
		return err
	}

	switch command {
	case "q", "quit":
		return r.finish(ctx)
	case "f", "flip", "":
		r.flipped = !r.flipped
	case "n", "next":
		r.session.Advance()
		r.flipped = false
	case "p", "previous":
		r.session.Retreat()
		r.flipped = false
	case "m", "master":
		if r.mastery.Mark(card.ID) {
			r.printf("Marked %s as mastered.\n", r.bold.Sprint(card.Word))
		} else {
			r.printf("%s is already mastered.\n", r.bold.Sprint(card.Word))
		}
	case "s", "speak":
		r.speaking = speech.SpeakAsync(ctx, r.speaker, card.Word)
	default:
		r.printf("Unknown command %q\n", command)
	}
	return nil
}

func (r *FlashcardQuizCLI) displayCard(card content.VocabularyWord) {
	summary := r.MasterySummary()

	r.println()
	r.printf("%s  Card %d of %d  Mastered %d/%d (%d%%)\n",
		r.title, r.session.Index()+1, r.session.Len(), summary.Mastered, summary.Total, summary.Percentage)
	_, _ = r.bold.Fprint(r.stdoutWriter, card.Word)
	if card.Pronunciation != "" {
		r.printf(" %s", card.Pronunciation)
	}
	r.printf(" [%s]", card.Difficulty)
	if r.mastery.Has(card.ID) {
		r.printf(" ✓ mastered")
	}
	r.println()

	if r.flipped {
		r.printf("Meaning: %s\n", card.Meaning)
		if card.SecondaryMeaning != "" {
			r.printf("Also: %s\n", card.SecondaryMeaning)
		}
		if card.Example != "" {
			r.printf("Example: %s\n", r.italic.Sprint(card.Example))
		}
	}
	r.printf("f flip, n next, p previous, m mastered, s speak, q quit: ")
}

func (r *FlashcardQuizCLI) finish(ctx context.Context) error {
	if r.speaking != nil {
		<-r.speaking
	}

	summary := r.MasterySummary()
	r.println()
	_, _ = r.bold.Fprintln(r.stdoutWriter, "Session summary")
	r.printf("Total words: %d\nMastered: %d\nLearning: %d\nProgress: %s\n",
		summary.Total,
		summary.Mastered,
		summary.Learning,
		scoreColor(summary.Percentage).Sprintf("%d%%", summary.Percentage),
	)

	if r.attempts == nil || r.user == nil {
		return errEnd
	}
	attempt := learning.NewAttempt(r.user.ID, learning.ActivityFlashcards, r.referenceID, r.title, r.session.Score(r.mastery), r.now())
	if err := r.attempts.BatchCreate(ctx, []learning.Attempt{attempt}); err != nil {
		return fmt.Errorf("attempts.BatchCreate() > %w", err)
	}
	return errEnd
}
