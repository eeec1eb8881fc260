package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/examprep/internal/cli"
	"github.com/at-ishikawa/examprep/internal/content"
	"github.com/at-ishikawa/examprep/internal/identity"
	"github.com/at-ishikawa/examprep/internal/learning"
	"github.com/at-ishikawa/examprep/internal/vocabulary"
)

const vocabularyReferenceID = "vocabulary"

func newVocabularyCommand() *cobra.Command {
	vocabularyCommand := &cobra.Command{
		Use:   "vocabulary",
		Short: "Browse and practice the vocabulary of all editorials",
	}

	vocabularyCommand.AddCommand(newVocabularyBrowseCommand())
	vocabularyCommand.AddCommand(newVocabularySearchCommand())
	vocabularyCommand.AddCommand(newVocabularyFlashcardsCommand())
	vocabularyCommand.AddCommand(newVocabularyQuizCommand())

	return vocabularyCommand
}

func loadVocabulary(cmd *cobra.Command, a *app, difficulty string) ([]content.VocabularyWord, error) {
	words, err := a.content.Vocabulary(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("content.Vocabulary() > %w", err)
	}
	return vocabulary.FilterByDifficulty(words, content.Difficulty(difficulty)), nil
}

func newVocabularyBrowseCommand() *cobra.Command {
	var difficulty string

	command := &cobra.Command{
		Use:   "browse",
		Short: "List vocabulary words",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			if _, err := a.authorize(cmd.Context(), identity.ActionPracticeVocabulary); err != nil {
				return err
			}
			words, err := loadVocabulary(cmd, a, difficulty)
			if err != nil {
				return err
			}
			cli.WriteVocabularyList(cmd.OutOrStdout(), words, nil)
			return nil
		},
	}

	command.Flags().StringVar(&difficulty, "difficulty", "", "easy, medium or hard")
	return command
}

func newVocabularySearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Search words and meanings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			if _, err := a.authorize(cmd.Context(), identity.ActionPracticeVocabulary); err != nil {
				return err
			}
			words, err := loadVocabulary(cmd, a, "")
			if err != nil {
				return err
			}
			cli.WriteVocabularyList(cmd.OutOrStdout(), vocabulary.Search(words, args[0]), nil)
			return nil
		},
	}
}

func newVocabularyFlashcardsCommand() *cobra.Command {
	var difficulty string

	command := &cobra.Command{
		Use:   "flashcards",
		Short: "Review vocabulary flashcards and mark the words you have mastered",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			user, err := a.authorize(cmd.Context(), identity.ActionPracticeVocabulary)
			if err != nil {
				return err
			}
			words, err := loadVocabulary(cmd, a, difficulty)
			if err != nil {
				return err
			}
			attempts, err := a.attempts()
			if err != nil {
				return err
			}

			base := cli.NewInteractiveQuizCLI(cmd.InOrStdin(), cmd.OutOrStdout())
			flashcards, err := cli.NewFlashcardQuizCLI(base, user, vocabularyReferenceID, "Vocabulary", words, nil, a.speaker(), attempts)
			if err != nil {
				return fmt.Errorf("no vocabulary to review: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Starting a flashcard review with %d words\n", len(words))
			return flashcards.Run(cmd.Context(), flashcards)
		},
	}

	command.Flags().StringVar(&difficulty, "difficulty", "", "easy, medium or hard")
	return command
}

func newVocabularyQuizCommand() *cobra.Command {
	var (
		size, distractors int
		seed              int64
		saveReport, pdf   bool
	)

	command := &cobra.Command{
		Use:   "quiz",
		Short: "Take a multiple choice quiz on word meanings",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			user, err := a.authorize(cmd.Context(), identity.ActionTakeQuiz)
			if err != nil {
				return err
			}
			words, err := loadVocabulary(cmd, a, "")
			if err != nil {
				return err
			}

			size = flagOrDefault(cmd.Flags(), "size", size, a.cfg.Quiz.VocabularySize)
			distractors = flagOrDefault(cmd.Flags(), "distractors", distractors, a.cfg.Quiz.Distractors)
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			questions, err := vocabulary.BuildQuiz(words, size, distractors, rand.New(rand.NewSource(seed)))
			if err != nil {
				return fmt.Errorf("vocabulary.BuildQuiz() > %w", err)
			}
			attempts, err := a.attempts()
			if err != nil {
				return err
			}

			base := cli.NewInteractiveQuizCLI(cmd.InOrStdin(), cmd.OutOrStdout())
			quiz, err := cli.NewQuizCLI(base, user, learning.ActivityVocabularyQuiz, vocabularyReferenceID, "Vocabulary Quiz", questions, cli.QuizOptions{
				Attempts: attempts,
				Reports:  a.reports(saveReport, pdf),
				PassMark: a.cfg.Learning.PassMark,
			})
			if err != nil {
				return err
			}
			return quiz.Run(cmd.Context(), quiz)
		},
	}

	command.Flags().IntVar(&size, "size", vocabulary.DefaultQuizSize, "number of questions")
	command.Flags().IntVar(&distractors, "distractors", vocabulary.DefaultDistractors, "wrong options per question")
	command.Flags().Int64Var(&seed, "seed", 0, "shuffle seed; 0 picks one from the clock")
	command.Flags().BoolVar(&saveReport, "report", false, "save a markdown result report")
	command.Flags().BoolVar(&pdf, "pdf", false, "save the result report as PDF")
	return command
}

// flagOrDefault returns value when the flag was given on the command line and
// fallback otherwise.
func flagOrDefault(flags *pflag.FlagSet, name string, value, fallback int) int {
	if flags.Changed(name) {
		return value
	}
	return fallback
}
