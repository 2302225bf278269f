package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. EXAMTRAINER_UI.
const EnvPrefix = "EXAMTRAINER"

// UI modes accepted by the ui key.
const (
	UIModeAuto  = "auto"
	UIModeLive  = "live"
	UIModePlain = "plain"
)

// Config holds settings loaded from defaults, an optional file, and the environment.
type Config struct {
	Env       string `mapstructure:"env"`       // local or production; selects the log encoder
	Title     string `mapstructure:"title"`     // welcome heading and terminal title
	Questions string `mapstructure:"questions"` // question source path; empty uses the bundled bank
	Assets    string `mapstructure:"assets"`    // asset directory with manifest.yml; empty uses bundled images
	UI        string `mapstructure:"ui"`        // auto, live, or plain
	NoColor   bool   `mapstructure:"no_color"`  // disable styling
	LogFile   string `mapstructure:"log_file"`  // log destination; empty disables logging
	Seed      uint64 `mapstructure:"seed"`      // question order seed; 0 seeds from the runtime
}

// Load reads configuration. When path is empty, examtrainer.yml is searched for in the
// working directory and the user config directory; a missing file is not an error.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("env", "local")
	v.SetDefault("title", "Radio amateur exam trainer")
	v.SetDefault("questions", "")
	v.SetDefault("assets", "")
	v.SetDefault("ui", UIModeAuto)
	v.SetDefault("no_color", false)
	v.SetDefault("log_file", "")
	v.SetDefault("seed", 0)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("examtrainer")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(dir + string(os.PathSeparator) + "examtrainer")
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	Normalize(&cfg)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Normalize trims string settings and lowercases enumerations.
func Normalize(cfg *Config) {
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	cfg.Title = strings.TrimSpace(cfg.Title)
	cfg.Questions = strings.TrimSpace(cfg.Questions)
	cfg.Assets = strings.TrimSpace(cfg.Assets)
	cfg.UI = strings.ToLower(strings.TrimSpace(cfg.UI))
	cfg.LogFile = strings.TrimSpace(cfg.LogFile)
	if cfg.UI == "" {
		cfg.UI = UIModeAuto
	}
}

// Validate checks enumerated settings.
func Validate(cfg Config) error {
	switch cfg.UI {
	case UIModeAuto, UIModeLive, UIModePlain:
	default:
		return fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", cfg.UI)
	}
	switch cfg.Env {
	case "local", "development", "production":
	default:
		return fmt.Errorf("invalid env %q (expected local|development|production)", cfg.Env)
	}
	return nil
}
