package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"examtrainer/internal/exam"
	"examtrainer/internal/ui/quiz"
)

// TestRunPlainSession drives a full session through the plain front end.
func TestRunPlainSession(t *testing.T) {
	dir := isolate(t)
	stubTerminal(t, false)
	stubStdin(t, strings.NewReader("\n2\n\n\nq\n"))
	questions := writeFile(t, filepath.Join(dir, "bank.yml"), singleQuestion)
	logPath := filepath.Join(dir, "session.log")

	var out, errOut bytes.Buffer
	code := Run([]string{"run", "--questions", questions, "--seed", "9", "--log-file", logPath, "--title", "Club night"}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut.String())
	}
	text := out.String()
	for _, want := range []string{"Club night", "Which band is 2 m?", "Correct!", "1 of 1 (100.00%)"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in output:\n%s", want, text)
		}
	}

	logged, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	for _, want := range []string{"session_id", "session starting", "session completed", "session ended"} {
		if !strings.Contains(string(logged), want) {
			t.Fatalf("expected %q in log:\n%s", want, logged)
		}
	}
}

// TestRunWithoutCommandStartsQuiz verifies flags alone select the run command.
func TestRunWithoutCommandStartsQuiz(t *testing.T) {
	isolate(t)
	stubTerminal(t, false)
	stubStdin(t, strings.NewReader("q\n"))

	var out, errOut bytes.Buffer
	code := Run([]string{"--ui", "plain"}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut.String())
	}
	if !strings.Contains(out.String(), "Welcome to the exam platform!") {
		t.Fatalf("expected welcome screen, got %q", out.String())
	}
}

// TestRunLiveOptions verifies config flows into the full-screen UI.
func TestRunLiveOptions(t *testing.T) {
	isolate(t)
	stubTerminal(t, true)
	original := runLive
	t.Cleanup(func() { runLive = original })

	var got quiz.Options
	var total int
	runLive = func(_ context.Context, session *exam.Session, _ io.Reader, _ io.Writer, opts quiz.Options) error {
		got = opts
		total = session.Stats().Total
		return nil
	}

	var out, errOut bytes.Buffer
	code := Run([]string{"run", "--no-color", "--title", "Trainer"}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut.String())
	}
	if !got.NoColor || got.Title != "Trainer" || got.Images == nil {
		t.Fatalf("unexpected options %+v", got)
	}
	if total != 14 {
		t.Fatalf("expected bundled bank of 14 questions, got %d", total)
	}
}

// TestRunLiveFallsBackWithoutTTY verifies the warning when live is forced.
func TestRunLiveFallsBackWithoutTTY(t *testing.T) {
	isolate(t)
	stubTerminal(t, false)
	stubStdin(t, strings.NewReader(""))

	var out, errOut bytes.Buffer
	code := Run([]string{"run", "--ui", "live"}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut.String())
	}
	if !strings.Contains(errOut.String(), "falling back to plain output") {
		t.Fatalf("expected fallback warning, got %q", errOut.String())
	}
}

// TestRunStartupFailures verifies diagnostics for unusable inputs.
func TestRunStartupFailures(t *testing.T) {
	cases := []struct {
		name string
		args func(dir string) []string
		want string
	}{
		{
			name: "missing questions file",
			args: func(dir string) []string {
				return []string{"run", "--questions", filepath.Join(dir, "missing.yml")}
			},
			want: "read question bank",
		},
		{
			name: "invalid answer",
			args: func(dir string) []string {
				return []string{"run", "--questions", writeFile(t, filepath.Join(dir, "bad.yml"), `questions:
  - text: Broken
    choice: [a, b, c]
    answer: 3
`)}
			},
			want: "answer",
		},
		{
			name: "unknown image",
			args: func(dir string) []string {
				return []string{"run", "--questions", writeFile(t, filepath.Join(dir, "img.yml"), `questions:
  - text: Pictured
    choice: [a, b, c]
    answer: 0
    image: schematics/unknown
`)}
			},
			want: "schematics/unknown",
		},
		{
			name: "invalid ui",
			args: func(string) []string { return []string{"run", "--ui", "fancy"} },
			want: "invalid ui mode",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := isolate(t)
			stubTerminal(t, false)
			stubStdin(t, strings.NewReader(""))
			var out, errOut bytes.Buffer
			code := Run(tc.args(dir), &out, &errOut)
			if code != ExitError {
				t.Fatalf("expected exit %d, got %d", ExitError, code)
			}
			if !strings.Contains(errOut.String(), tc.want) {
				t.Fatalf("expected %q in stderr, got %q", tc.want, errOut.String())
			}
		})
	}
}

// TestRunReadsConfigFile verifies a config file selects the question source.
func TestRunReadsConfigFile(t *testing.T) {
	dir := isolate(t)
	stubTerminal(t, false)
	stubStdin(t, strings.NewReader("\n"))
	questions := writeFile(t, filepath.Join(dir, "bank.yml"), singleQuestion)
	writeFile(t, filepath.Join(dir, "examtrainer.yml"), "ui: plain\nquestions: "+questions+"\n")

	var out, errOut bytes.Buffer
	code := Run(nil, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut.String())
	}
	if !strings.Contains(out.String(), "Which band is 2 m?") {
		t.Fatalf("expected configured bank, got %q", out.String())
	}
}
