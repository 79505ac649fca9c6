// Package logging provides structured logging with slog for askpass.
//
// A dialog that prompts for secrets writes its diagnostics to stderr only:
// stdout is reserved for the passphrase, and log files would outlive the
// process. Passphrase material must never reach a log record.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Level represents a logging level.
type Level = slog.Level

// Log levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// Format represents the output format for logs.
type Format int

const (
	// FormatText outputs human-readable text logs.
	FormatText Format = iota
	// FormatJSON outputs JSON-structured logs.
	FormatJSON
)

// Config holds the logging configuration.
type Config struct {
	// Level is the minimum log level to output.
	Level Level

	// Format is the output format (text or JSON).
	Format Format

	// Output defaults to stderr.
	Output io.Writer
}

// FromVerbosity maps repeated -v flags to a level: 0 warns and above,
// 1 adds info, 2 and beyond adds debug. Quiet suppresses everything
// below error.
func FromVerbosity(verbosity int, quiet bool) Level {
	switch {
	case quiet:
		return LevelError
	case verbosity <= 0:
		return LevelWarn
	case verbosity == 1:
		return LevelInfo
	default:
		return LevelDebug
	}
}

// New creates a logger from the configuration.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}
	var h slog.Handler
	if cfg.Format == FormatJSON {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}
	return slog.New(h)
}

// Setup creates a logger and installs it as the slog default.
func Setup(cfg Config) *slog.Logger {
	logger := New(cfg)
	slog.SetDefault(logger)
	return logger
}
