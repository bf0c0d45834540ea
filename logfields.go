package main

import (
	"io"
	"log/slog"
)

// Log attribute keys used across the generator.
const (
	keyPath  = "path"
	keyCount = "count"
	keyError = "error"
)

func logPath(p string) slog.Attr { return slog.String(keyPath, p) }
func logCount(n int) slog.Attr   { return slog.Int(keyCount, n) }
func logError(err error) slog.Attr {
	if err == nil {
		return slog.String(keyError, "")
	}
	return slog.String(keyError, err.Error())
}

// newLogger hides progress output when quiet; errors and warnings still
// get through.
func newLogger(w io.Writer, quiet, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelWarn
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
