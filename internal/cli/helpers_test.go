package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

// isolate runs the test from an empty directory so no config or .env leaks in.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)
	return dir
}

func writeFile(t *testing.T, path, body string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func stubTerminal(t *testing.T, tty bool) {
	t.Helper()
	original := isTerminal
	isTerminal = func(io.Writer) bool { return tty }
	t.Cleanup(func() { isTerminal = original })
}

func stubStdin(t *testing.T, in io.Reader) {
	t.Helper()
	original := stdin
	stdin = in
	t.Cleanup(func() { stdin = original })
}

const singleQuestion = `questions:
  - text: Which band is 2 m?
    choice: [HF, VHF, UHF]
    answer: 1
`
