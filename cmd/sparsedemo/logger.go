// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/lvsparse/sparse"
)

// Logger wraps slog.Logger with matrix-specific fields.
type Logger struct {
	*slog.Logger
}

// newLogger builds a text or JSON logger writing to w at the given level.
func newLogger(w io.Writer, format string, level slog.Level) (*Logger, error) {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "text", "":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", format)
	}

	return &Logger{Logger: slog.New(handler)}, nil
}

// parseLevel maps debug/info/warn/error onto slog levels.
func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}

	return lvl, nil
}

// WithMatrix tags the logger with a matrix name, shape and entry count.
func WithMatrix[T sparse.Number](l *Logger, name string, m sparse.Matrix[T]) *Logger {
	return &Logger{
		Logger: l.Logger.With("matrix", name, "rows", m.Rows(), "cols", m.Cols(), "nnz", m.NNZ()),
	}
}
