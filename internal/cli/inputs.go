package cli

import (
	"flag"
	"fmt"
	"os"

	"examtrainer/internal/assets"
	"examtrainer/internal/bank"
	"examtrainer/internal/config"
)

// inputFlags are the options shared by run and validate. Flags that are set
// override the loaded configuration.
type inputFlags struct {
	config    string
	questions string
	assets    string
}

func bindInputFlags(fs *flag.FlagSet) *inputFlags {
	f := &inputFlags{}
	fs.StringVar(&f.config, "config", "", "Path to config file (default: search for examtrainer.yml)")
	fs.StringVar(&f.questions, "questions", "", "Question source (.yml, .json or .xml); default is the bundled bank")
	fs.StringVar(&f.assets, "assets", "", "Image directory containing manifest.yml; default is the bundled images")
	return f
}

// loadConfig reads the configuration and applies every flag the user set.
func loadConfig(fs *flag.FlagSet, f *inputFlags, override func(name string, cfg *config.Config)) (config.Config, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return config.Config{}, err
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "questions":
			cfg.Questions = f.questions
		case "assets":
			cfg.Assets = f.assets
		default:
			if override != nil {
				override(fl.Name, &cfg)
			}
		}
	})
	config.Normalize(&cfg)
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// loadInputs loads the question bank and image catalog named by cfg and checks
// that every image a question references can be shown.
func loadInputs(cfg config.Config) (*bank.Bank, *assets.Catalog, error) {
	var (
		questions *bank.Bank
		err       error
	)
	if cfg.Questions == "" {
		questions, err = bank.Default()
	} else {
		questions, err = bank.Load(cfg.Questions)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load questions from %s: %w", questionSource(cfg), err)
	}

	var catalog *assets.Catalog
	if cfg.Assets == "" {
		catalog, err = assets.Default()
	} else {
		catalog, err = assets.Load(os.DirFS(cfg.Assets))
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load images: %w", err)
	}
	if err := catalog.Validate(questions); err != nil {
		return nil, nil, err
	}
	return questions, catalog, nil
}

func questionSource(cfg config.Config) string {
	if cfg.Questions == "" {
		return bank.DefaultName
	}
	return cfg.Questions
}
