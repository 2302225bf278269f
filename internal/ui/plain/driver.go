// Package plain runs an exam session over line-oriented input and output, for
// terminals without cursor control and for scripted use.
package plain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"examtrainer/internal/assets"
	"examtrainer/internal/exam"
	"examtrainer/internal/ui"
)

// ImageSource resolves image keys referenced by questions.
type ImageSource interface {
	Lookup(key string) (assets.Image, bool)
}

// Options configures the plain driver.
type Options struct {
	Title  string
	Images ImageSource
}

const usage = "Commands: 1-3 choose, enter answer/continue, s skip, q quit, ? help"

// Run reads one command per line from in and prints each resulting screen to out.
// It returns when input ends, the user quits, or ctx is done, even while a read
// is pending.
func Run(ctx context.Context, session *exam.Session, in io.Reader, out io.Writer, opts Options) error {
	w := bufio.NewWriter(out)
	defer w.Flush()

	done := make(chan struct{})
	defer close(done)
	lines, readErr := readLines(in, done)

	render(w, session.View(), opts)
	for {
		if err := w.Flush(); err != nil {
			return fmt.Errorf("write screen: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case next, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("read command: %w", err)
				}
				return nil
			}
			line = next
		}
		command := strings.ToLower(strings.TrimSpace(line))
		switch command {
		case "q", "quit":
			return nil
		case "?", "help":
			fmt.Fprintln(w, usage)
			continue
		}
		action, ok := parseCommand(command, session.View())
		if !ok {
			fmt.Fprintf(w, "Unknown command %q. %s\n", command, usage)
			continue
		}
		if err := session.Apply(action); err != nil {
			fmt.Fprintln(w, describe(err))
			continue
		}
		render(w, session.View(), opts)
	}
}

// readLines scans in on its own goroutine. The error channel receives the scan
// result before lines is closed. The goroutine stops sending once done is closed.
func readLines(in io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				readErr <- nil
				return
			}
		}
		readErr <- scanner.Err()
	}()
	return lines, readErr
}

// parseCommand maps a command line to the action it requests in view's phase.
func parseCommand(command string, view exam.View) (exam.Action, bool) {
	if command == "s" || command == "skip" {
		return exam.Skip(), true
	}
	if command == "r" || command == "restart" {
		return exam.Restart(), true
	}
	if n, err := strconv.Atoi(command); err == nil {
		return exam.Select(n - 1), true
	}
	if command != "" {
		return exam.Action{}, false
	}
	switch view.Phase {
	case exam.NotStarted:
		return exam.Start(), true
	case exam.AwaitingChoice:
		return exam.Submit(), true
	case exam.AnswerRevealed:
		return exam.Continue(), true
	default:
		return exam.Restart(), true
	}
}

// describe turns a rejected transition into a user-facing hint.
func describe(err error) string {
	switch {
	case errors.Is(err, exam.ErrNoSelection):
		return ui.ChooseAnswer + "."
	case errors.Is(err, exam.ErrNoUnseenQuestions):
		return ui.NoSkip
	case errors.Is(err, exam.ErrChoiceOutOfRange):
		return "Choose 1, 2 or 3."
	default:
		return "Not available now."
	}
}

func render(w io.Writer, view exam.View, opts Options) {
	fmt.Fprintln(w)
	switch view.Phase {
	case exam.NotStarted:
		fmt.Fprintln(w, ui.Welcome)
		if opts.Title != "" {
			fmt.Fprintln(w, opts.Title)
		}
		fmt.Fprintln(w, ui.StartHint)
	case exam.AwaitingChoice:
		fmt.Fprintln(w, view.Question.Text)
		for i, choice := range view.Question.Choice {
			marker := "( )"
			if i == view.Selected {
				marker = "(*)"
			}
			fmt.Fprintf(w, "  %s %s. %s\n", marker, ui.ChoiceLabel(i), choice)
		}
		if line := imageLine(view, opts.Images); line != "" {
			fmt.Fprintln(w, line)
		}
		if !view.SubmitEnabled {
			fmt.Fprintln(w, ui.ChooseAnswer)
		}
		fmt.Fprintln(w, ui.ScoreLine(view))
	case exam.AnswerRevealed:
		if view.Feedback.Correct {
			fmt.Fprintln(w, ui.Correct)
		} else {
			fmt.Fprintln(w, ui.Incorrect)
			fmt.Fprintln(w, ui.SelectedAnswer, view.Feedback.SelectedText)
			fmt.Fprintln(w, ui.CorrectAnswer, view.Feedback.AnswerText)
		}
		fmt.Fprintln(w, ui.ScoreLine(view))
	case exam.Completed:
		fmt.Fprintln(w, ui.AllAnswered)
		fmt.Fprintln(w, ui.ScoreLine(view))
		fmt.Fprintln(w, "Press enter to try again.")
	}
}

// imageLine describes the question image, since plain output cannot draw it.
func imageLine(view exam.View, images ImageSource) string {
	if !view.Question.HasImage() || images == nil {
		return ""
	}
	img, ok := images.Lookup(view.Question.Image)
	if !ok {
		return ""
	}
	return fmt.Sprintf("[image %s, %dx%d]", img.Key, img.Width, img.Height)
}
