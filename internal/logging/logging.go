// SPDX-License-Identifier: MIT

// Package logging wraps log/slog with the field names the filter pipeline
// uses, so every batch and call summary is logged the same way.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with filter-specific helpers.
type Logger struct {
	*slog.Logger
}

// New creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
func New(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// From wraps an existing *slog.Logger. A nil logger yields Noop().
func From(l *slog.Logger) *Logger {
	if l == nil {
		return Noop()
	}
	return &Logger{Logger: l}
}

// NewJSON creates a Logger that writes JSON lines to stderr.
func NewJSON(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))}
}

// NewText creates a Logger that writes human-readable text to stderr.
func NewText(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))}
}

// Noop creates a Logger that discards all output.
func Noop() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	}))}
}

// WithOp tags every record with the filtering operation name.
func (l *Logger) WithOp(op string) *Logger {
	return &Logger{Logger: l.Logger.With("op", op)}
}

// BatchDone logs one processed batch at debug level.
func (l *Logger) BatchDone(batch, start, stop, kept int) {
	l.Debug("batch processed",
		"batch", batch,
		"start", start,
		"stop", stop,
		"kept", kept,
	)
}

// FilterDone logs the outcome of a whole filtering call.
func (l *Logger) FilterDone(rows, batches, kept int, err error) {
	if err != nil {
		l.Error("filter failed",
			"rows", rows,
			"batches", batches,
			"error", err,
		)
		return
	}
	l.Info("filter completed",
		"rows", rows,
		"batches", batches,
		"kept", kept,
	)
}
