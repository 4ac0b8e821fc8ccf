// Package logging builds the application logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Prefix is prepended to every log line.
const Prefix = "flappy"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates a logger from cfg. When cfg.File is set the logger appends to
// that file, otherwise it writes to fallback. The returned closer releases
// the file and must be called on exit.
func New(cfg config.LogConfig, fallback io.Writer) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if cfg.Level != "" {
		lvl, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = lvl
	}

	out := fallback
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		f, err := openFile(cfg.File)
		if err != nil {
			return nil, nil, err
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// openFile opens path for appending, creating parent directories.
func openFile(path string) (*os.File, error) {
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("logging: cannot create directory %s: %w", dir, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: cannot open log file: %w", err)
	}
	return f, nil
}

// NewOrFallback is New for callers that must not fail on logging. When the
// level or the log file is unusable it prints a one-line warning to warn and
// returns a logger writing to fallback at info level.
func NewOrFallback(cfg config.LogConfig, fallback, warn io.Writer) (*log.Logger, io.Closer) {
	logger, closer, err := New(cfg, fallback)
	if err == nil {
		return logger, closer
	}

	fmt.Fprintf(warn, "warning: %v; continuing without the log file\n", err)
	logger, closer, _ = New(config.LogConfig{}, fallback)
	return logger, closer
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
