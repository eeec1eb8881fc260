package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/fatih/color"

	"github.com/at-ishikawa/examprep/internal/assessment"
	"github.com/at-ishikawa/examprep/internal/content"
	"github.com/at-ishikawa/examprep/internal/identity"
	"github.com/at-ishikawa/examprep/internal/learning"
	"github.com/at-ishikawa/examprep/internal/report"
)

// QuizOptions are the optional collaborators of a quiz.
type QuizOptions struct {
	// Attempts records the finished quiz when set.
	Attempts learning.Repository
	// Reports saves a result report when set.
	Reports  *report.Writer
	PassMark int
}

// QuizCLI runs a multiple choice quiz: an editorial quiz or a vocabulary quiz
type QuizCLI struct {
	*InteractiveQuizCLI
	user        *identity.User
	activity    learning.Activity
	referenceID string
	title       string
	session     *assessment.Session
	options     QuizOptions
	summary     *assessment.ScoreSummary
}

func NewQuizCLI(
	base *InteractiveQuizCLI,
	user *identity.User,
	activity learning.Activity,
	referenceID string,
	title string,
	questions []content.Question,
	options QuizOptions,
) (*QuizCLI, error) {
	session, err := assessment.Start(assessment.Questions(questions))
	if err != nil {
		return nil, fmt.Errorf("assessment.Start() > %w", err)
	}
	return &QuizCLI{
		InteractiveQuizCLI: base,
		user:               user,
		activity:           activity,
		referenceID:        referenceID,
		title:              title,
		session:            session,
		options:            options,
	}, nil
}

// Summary is the score of a finished quiz, or nil while it is in progress or
// when it was abandoned.
func (r *QuizCLI) Summary() *assessment.ScoreSummary {
	return r.summary
}

func (r *QuizCLI) Session(ctx context.Context) error {
	if r.session.Completed() {
		return r.finish(ctx)
	}

	question := r.session.Current().(content.Question)
	r.displayQuestion(question)

	command, err := r.readCommand()
	if err != nil {
		return err
	}

	switch command {
	case "q", "quit":
		r.println("Quiz abandoned.")
		return errEnd
	case "n", "next":
		if _, ok := r.session.Response(r.session.Index()); !ok {
			r.println("Select an answer before moving on.")
			return nil
		}
		r.session.Advance()
		if r.session.Completed() {
			return r.finish(ctx)
		}
	case "p", "previous":
		if !r.session.Retreat() {
			r.println("This is the first question.")
		}
	default:
		option, err := strconv.Atoi(command)
		if err != nil {
			r.printf("Unknown command %q\n", command)
			return nil
		}
		if err := r.session.SelectAnswer(option - 1); err != nil {
			if errors.Is(err, assessment.ErrInvalidResponseIndex) {
				r.printf("Choose an option between 1 and %d.\n", len(question.Options))
				return nil
			}
			return fmt.Errorf("session.SelectAnswer() > %w", err)
		}
	}
	return nil
}

func (r *QuizCLI) displayQuestion(question content.Question) {
	r.println()
	r.printf("%s  Question %d of %d (%d%%)\n", r.title, r.session.Index()+1, r.session.Len(), r.session.Progress())
	_, _ = r.bold.Fprintln(r.stdoutWriter, question.Prompt)

	selected, answered := r.session.Response(r.session.Index())
	for i, option := range question.Options {
		marker := " "
		if answered && selected == i {
			marker = "*"
		}
		r.printf(" %s %d) %s\n", marker, i+1, option)
	}

	next := "n next"
	if r.session.Index() == r.session.Len()-1 {
		next = "n finish"
	}
	r.printf("[1-%d] answer, %s, p previous, q quit: ", len(question.Options), next)
}

func (r *QuizCLI) finish(ctx context.Context) error {
	summary := r.session.Score(nil)
	r.summary = &summary
	entries := r.session.Review(nil)

	r.println()
	_, _ = r.bold.Fprintln(r.stdoutWriter, "Quiz Complete!")
	r.printf("Score: %s (%d of %d correct)\n",
		scoreColor(summary.Percentage).Sprintf("%d%%", summary.Percentage),
		summary.Correct,
		summary.Total,
	)
	r.println()
	writeReview(r.InteractiveQuizCLI, entries)

	completedAt := r.now()
	if r.options.Attempts != nil && r.user != nil {
		attempt := learning.NewAttempt(r.user.ID, r.activity, r.referenceID, r.title, summary, completedAt)
		if err := r.options.Attempts.BatchCreate(ctx, []learning.Attempt{attempt}); err != nil {
			return fmt.Errorf("Attempts.BatchCreate() > %w", err)
		}
		slog.Default().Debug("recorded an attempt",
			slog.String("attemptID", attempt.ID),
			slog.String("referenceID", r.referenceID),
		)
	}

	if r.options.Reports != nil {
		userName := ""
		if r.user != nil {
			userName = r.user.Name
		}
		path, err := r.options.Reports.Save(report.QuizResult{
			Title:       r.title,
			UserName:    userName,
			CompletedAt: completedAt,
			Summary:     summary,
			Entries:     entries,
			PassMark:    r.options.PassMark,
		})
		if err != nil {
			return fmt.Errorf("Reports.Save() > %w", err)
		}
		r.printf("Report saved to %s\n", path)
	}
	return errEnd
}

func writeReview(cli *InteractiveQuizCLI, entries []assessment.ReviewEntry) {
	for _, entry := range entries {
		if entry.IsCorrect {
			cli.printf("✅ ")
		} else {
			cli.printf("❌ ")
		}
		_, _ = cli.bold.Fprintf(cli.stdoutWriter, "%d. %s\n", entry.Index+1, entry.Prompt)

		answer := "(not answered)"
		if entry.Answered {
			answer = entry.SelectedAnswer
		}
		cli.printf("   Your answer: %s\n", answer)
		if !entry.IsCorrect {
			cli.printf("   Correct answer: %s\n", color.GreenString(entry.CorrectAnswer))
		}
		if entry.Explanation != "" {
			cli.printf("   %s\n", cli.italic.Sprint(entry.Explanation))
		}
	}
}

// scoreColor is green from 80%, yellow from 60% and red below.
func scoreColor(percentage int) *color.Color {
	switch {
	case percentage >= 80:
		return color.New(color.FgGreen, color.Bold)
	case percentage >= 60:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}
