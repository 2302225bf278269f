package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chdir moves the test into an empty directory so no stray config or .env is read.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)
	return dir
}

// TestLoadDefaults verifies defaults apply without a config file.
func TestLoadDefaults(t *testing.T) {
	chdir(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI != UIModeAuto || cfg.Env != "local" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Questions != "" || cfg.Assets != "" || cfg.LogFile != "" || cfg.Seed != 0 {
		t.Fatalf("expected empty paths, got %+v", cfg)
	}
	if cfg.Title == "" {
		t.Fatalf("expected default title")
	}
}

// TestLoadFile verifies an explicit YAML file is read.
func TestLoadFile(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, "custom.yml")
	payload := "ui: Plain\nno_color: true\nseed: 42\nquestions: quiz.xml\n"
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI != UIModePlain || !cfg.NoColor || cfg.Seed != 42 || cfg.Questions != "quiz.xml" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

// TestLoadDiscoversWorkingDirectoryFile verifies examtrainer.yml is found implicitly.
func TestLoadDiscoversWorkingDirectoryFile(t *testing.T) {
	dir := chdir(t)
	if err := os.WriteFile(filepath.Join(dir, "examtrainer.yml"), []byte("title: Club night\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Title != "Club night" {
		t.Fatalf("expected title from file, got %q", cfg.Title)
	}
}

// TestLoadEnvironmentOverrides verifies EXAMTRAINER_* variables win over the file.
func TestLoadEnvironmentOverrides(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, "custom.yml")
	if err := os.WriteFile(path, []byte("ui: live\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("EXAMTRAINER_UI", "plain")
	t.Setenv("EXAMTRAINER_LOG_FILE", "trainer.log")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI != UIModePlain || cfg.LogFile != "trainer.log" {
		t.Fatalf("expected env overrides, got %+v", cfg)
	}
}

// TestLoadDotEnv verifies a .env file in the working directory is applied.
func TestLoadDotEnv(t *testing.T) {
	dir := chdir(t)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("EXAMTRAINER_TITLE=From dotenv\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("EXAMTRAINER_TITLE", "")
	os.Unsetenv("EXAMTRAINER_TITLE")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Title != "From dotenv" {
		t.Fatalf("expected title from .env, got %q", cfg.Title)
	}
}

// TestLoadErrors verifies invalid settings and missing explicit files fail.
func TestLoadErrors(t *testing.T) {
	dir := chdir(t)
	if _, err := Load(filepath.Join(dir, "missing.yml")); err == nil {
		t.Fatalf("expected missing explicit file to fail")
	}
	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte("ui: fancy\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "ui mode") {
		t.Fatalf("expected ui mode error, got %v", err)
	}
}
