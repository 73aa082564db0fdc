// Package netlog centralizes structured-logging setup: a single
// slog.JSONHandler writing to stderr with a configurable level.
package netlog

import (
	"log/slog"
	"os"
)

// New builds a JSON slog.Logger writing to stderr at the given level name
// (debug, info, warn, error; unrecognized names fall back to info).
func New(levelName string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: ParseLevel(levelName),
	}))
}

// ParseLevel maps a config string to a slog.Level, defaulting to Info for
// anything unrecognized rather than failing configuration loading over a
// typo in a log level.
func ParseLevel(levelName string) slog.Level {
	switch levelName {
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
