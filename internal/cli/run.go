package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"examtrainer/internal/config"
	"examtrainer/internal/exam"
	"examtrainer/internal/logging"
	"examtrainer/internal/ui/plain"
	"examtrainer/internal/ui/quiz"
)

var (
	stdin    io.Reader = os.Stdin
	runLive            = quiz.Run
	runPlain           = plain.Run
)

func runRun(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		inputs := bindInputFlags(fs)
		uiMode := fs.String("ui", "", "UI mode: auto, live, or plain")
		noColor := fs.Bool("no-color", false, "Disable colors and images")
		seed := fs.Uint64("seed", 0, "Seed for question order (0 picks a random seed)")
		title := fs.String("title", "", "Heading shown on the welcome screen")
		logFile := fs.String("log-file", "", "Write session logs to this file")
		if err := fs.Parse(args); err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %v\n", fs.Args())
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, err := loadConfig(fs, inputs, func(name string, cfg *config.Config) {
			switch name {
			case "ui":
				cfg.UI = *uiMode
			case "no-color":
				cfg.NoColor = *noColor
			case "seed":
				cfg.Seed = *seed
			case "title":
				cfg.Title = *title
			case "log-file":
				cfg.LogFile = *logFile
			}
		})
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		decision, err := resolveUIMode(cfg.UI, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid UI mode: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		logger, err := logging.New(cfg)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open log: %v\n", err)
			return ExitError
		}
		defer func() { _ = logger.Sync() }()
		logger = logger.With(zap.String("session_id", uuid.NewString()))

		questions, catalog, err := loadInputs(cfg)
		if err != nil {
			logger.Error("startup failed", zap.Error(err))
			fmt.Fprintf(stderr, "Failed to start: %v\n", err)
			return ExitError
		}
		logger.Info("session starting",
			zap.String("questions", questionSource(cfg)),
			zap.Int("question_count", questions.Len()),
			zap.Int("image_count", catalog.Len()),
			zap.Bool("live", decision.useLive),
			zap.String("seed", seedLabel(cfg.Seed)),
		)

		session, err := exam.NewSession(questions,
			exam.WithSelector(newSelector(cfg.Seed)),
			exam.WithObserver(logging.NewSessionObserver(logger)),
		)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to start: %v\n", err)
			return ExitError
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if decision.useLive {
			err = runLive(ctx, session, stdin, stdout, quiz.Options{
				Title:   cfg.Title,
				NoColor: cfg.NoColor,
				Images:  catalog,
			})
		} else {
			err = runPlain(ctx, session, stdin, stdout, plain.Options{
				Title:  cfg.Title,
				Images: catalog,
			})
		}
		stats := session.Stats()
		logger.Info("session ended",
			zap.Int("answered", stats.Answered),
			zap.Int("correct", stats.Correct),
			zap.Int("total", stats.Total),
		)
		if err != nil && ctx.Err() == nil {
			logger.Error("ui failed", zap.Error(err))
			fmt.Fprintf(stderr, "Exam failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// newSelector seeds question order from seed, or from the runtime when seed is 0.
func newSelector(seed uint64) *exam.Selector {
	if seed == 0 {
		return exam.NewSelector(nil)
	}
	return exam.NewSelector(rand.New(rand.NewPCG(seed, seed)))
}

func seedLabel(seed uint64) string {
	if seed == 0 {
		return "random"
	}
	return strconv.FormatUint(seed, 10)
}
