package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"examtrainer/internal/config"
	"examtrainer/internal/exam"
)

// TestNewWithoutFileIsNop verifies logging is disabled by default.
func TestNewWithoutFileIsNop(t *testing.T) {
	logger, err := New(config.Config{Env: "local"})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatalf("expected a no-op logger")
	}
}

// TestNewWritesToFile verifies both encoders write to the configured file.
func TestNewWritesToFile(t *testing.T) {
	for _, env := range []string{"local", "production"} {
		t.Run(env, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "trainer.log")
			logger, err := New(config.Config{Env: env, LogFile: path})
			if err != nil {
				t.Fatalf("new logger: %v", err)
			}
			logger.Info("bank loaded", zap.Int("questions", 3))
			_ = logger.Sync()
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read log: %v", err)
			}
			if !strings.Contains(string(data), "bank loaded") {
				t.Fatalf("expected log line, got %q", string(data))
			}
		})
	}
}

// TestSessionObserverLevels verifies accepted and rejected transitions are logged.
func TestSessionObserverLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	obs := NewSessionObserver(zap.New(core))

	obs.OnTransition(exam.Transition{Action: exam.Start(), From: exam.NotStarted, To: exam.AwaitingChoice, Question: 1})
	obs.OnTransition(exam.Transition{Action: exam.Submit(), From: exam.AwaitingChoice, To: exam.AwaitingChoice, Question: 1, Err: errors.New("no choice")})
	obs.OnTransition(exam.Transition{
		Action: exam.Continue(),
		From:   exam.AnswerRevealed,
		To:     exam.Completed,
		Score:  exam.Score{Correct: 2, Answered: 2, Total: 2},
	})

	if n := logs.FilterMessage("transition").Len(); n != 2 {
		t.Fatalf("expected 2 accepted transitions, got %d", n)
	}
	rejected := logs.FilterMessage("transition rejected").All()
	if len(rejected) != 1 || rejected[0].Level != zapcore.DebugLevel {
		t.Fatalf("expected one debug rejection, got %+v", rejected)
	}
	completed := logs.FilterMessage("session completed").All()
	if len(completed) != 1 || completed[0].ContextMap()["score"] != "2 of 2 (100.00%)" {
		t.Fatalf("unexpected completion entries %+v", completed)
	}
}
