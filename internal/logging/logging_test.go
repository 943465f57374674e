package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/quizbook/internal/config"
)

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "quizbook.log")
	cfg := &config.Config{Env: "production", Log: config.Log{Level: "info", File: path}}

	logger, err := New(cfg, File)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("attempt recorded")
	logger.Debug("hidden")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, `"msg":"attempt recorded"`) {
		t.Errorf("log missing JSON entry: %q", got)
	}
	if strings.Contains(got, "hidden") {
		t.Error("debug entry written at info level")
	}
}

func TestNew_BadLevel(t *testing.T) {
	cfg := &config.Config{Log: config.Log{Level: "loud"}}
	if _, err := New(cfg, Stderr); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNew_DefaultFileInStateDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)

	logger, err := New(&config.Config{}, File)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hello")
	_ = logger.Sync()

	if _, err := os.Stat(filepath.Join(dir, "quizbook", "quizbook.log")); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}
