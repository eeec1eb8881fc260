package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/fatih/color"
)

var (
	errEnd = errors.New("end")
)

// InteractiveQuizCLI contains shared logic for interactive study sessions
type InteractiveQuizCLI struct {
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	now          func() time.Time
}

// NewInteractiveQuizCLI reads commands from stdin and writes screens to stdout
func NewInteractiveQuizCLI(stdin io.Reader, stdout io.Writer) *InteractiveQuizCLI {
	return &InteractiveQuizCLI{
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		now:          time.Now,
	}
}

//go:generate mockgen -source=interactive_quiz_cli.go -destination=../mocks/cli/mock_session.go -package=mock_cli Session

// Session draws one screen and handles one command. It returns errEnd when
// the session is over.
type Session interface {
	Session(context context.Context) error
}

func (cli *InteractiveQuizCLI) Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := session.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		cli.println("Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// readCommand reads one trimmed, lower-cased line. End of input reads as "q".
func (cli *InteractiveQuizCLI) readCommand() (string, error) {
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("error reading input: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			return "q", nil
		}
	}
	return strings.ToLower(strings.TrimSpace(line)), nil
}

func (cli *InteractiveQuizCLI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(cli.stdoutWriter, format, args...)
}

func (cli *InteractiveQuizCLI) println(args ...any) {
	_, _ = fmt.Fprintln(cli.stdoutWriter, args...)
}
