// Package logging builds the process logger.
package logging

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to w. Debug enables debug records;
// otherwise only warnings and errors are written.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
