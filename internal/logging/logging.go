// Package logging builds the slog logger used by the spanforest CLI.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// Open returns a logger writing to the file at path, appending, or to
// fallback when path is empty. The returned close func releases the file;
// it is a no-op for fallback.
func Open(path, level string, fallback io.Writer) (*slog.Logger, func() error, error) {
	if path == "" {
		return New(fallback, level), func() error { return nil }, nil
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}

	return New(f, level), f.Close, nil
}

// ParseLevel maps "debug", "warn" and "error" to their slog levels. Anything
// else is Info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
