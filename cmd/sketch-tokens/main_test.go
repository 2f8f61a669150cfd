package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
)

func TestWriteOutputReturnsError(t *testing.T) {
	green, red := color.New(color.FgGreen), color.New(color.FgRed)
	dir := t.TempDir()

	if err := writeOutput(green, red, filepath.Join(dir, "missing", "tokens.json"), []byte("{}")); err == nil {
		t.Fatal("writeOutput() expected an error for a missing directory")
	}

	path := filepath.Join(dir, "tokens.json")
	if err := writeOutput(green, red, path, []byte("{}\n")); err != nil {
		t.Fatalf("writeOutput() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "{}\n" {
		t.Fatalf("written file = %q, %v", data, err)
	}
}

func TestExecuteReportsConfigErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("input: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}

	args := os.Args
	t.Cleanup(func() { os.Args = args })
	os.Args = []string{"sketch-tokens", "--config", path}

	if code := execute(); code != 1 {
		t.Fatalf("execute() = %d, want 1", code)
	}
}
