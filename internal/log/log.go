// Package log provides category-tagged structured logging.
//
// The TUI owns stdout and stderr while it runs, so log output goes to a file.
// Until Init is called every call is discarded.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
)

// Category tags a log line with the subsystem that produced it.
type Category string

const (
	CatConfig  Category = "config"
	CatSession Category = "session"
	CatSound   Category = "sound"
	CatUI      Category = "ui"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// Init opens path for appending and routes all logging there.
// debug lowers the level from Info to Debug. The returned func closes the file.
func Init(path string, debug bool) (func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	SetOutput(f, debug)
	return f.Close, nil
}

// SetOutput routes logging to w.
func SetOutput(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger.Store(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func with(cat Category) *slog.Logger {
	return logger.Load().With("cat", string(cat))
}

// Debug logs at debug level.
func Debug(cat Category, msg string, args ...any) {
	with(cat).Debug(msg, args...)
}

// Info logs at info level.
func Info(cat Category, msg string, args ...any) {
	with(cat).Info(msg, args...)
}

// Warn logs at warn level.
func Warn(cat Category, msg string, args ...any) {
	with(cat).Warn(msg, args...)
}

// Error logs at error level.
func Error(cat Category, msg string, args ...any) {
	with(cat).Error(msg, args...)
}

// ErrorErr logs err under the "error" key at error level.
func ErrorErr(cat Category, msg string, err error, args ...any) {
	with(cat).Error(msg, append([]any{"error", err}, args...)...)
}
