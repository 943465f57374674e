// Package logging builds the zap loggers used across quizbook.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/quizbook/internal/config"
)

// Output selects where log lines go.
type Output int

const (
	// Stderr is used by the HTTP server and one-shot commands.
	Stderr Output = iota
	// File is used while the TUI owns the terminal.
	File
)

// New builds a logger for cfg. Production uses the JSON encoder, every other
// environment the development console encoder.
func New(cfg *config.Config, out Output) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.IsProduction() {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}

	if cfg.Log.Level != "" {
		lvl, err := zapcore.ParseLevel(cfg.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		zc.Level = zap.NewAtomicLevelAt(lvl)
	}

	if out == File {
		path, err := filePath(cfg)
		if err != nil {
			return nil, err
		}
		zc.OutputPaths = []string{path}
		zc.ErrorOutputPaths = []string{path}
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// filePath returns the configured log file, defaulting to the XDG state dir.
func filePath(cfg *config.Config) (string, error) {
	path := cfg.Log.File
	if path == "" {
		dir, err := config.StateDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(dir, "quizbook.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create log dir: %w", err)
	}
	return path, nil
}
