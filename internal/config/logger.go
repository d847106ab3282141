package config

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger creates a logger writing to outW. It does not set the global logger.
// An unknown level falls back to info and an unknown format to text.
func NewLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level

	switch strings.ToLower(levelStr) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(formatStr) == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}

// Logger builds the logger described by c.
func (c Config) Logger(outW io.Writer) *slog.Logger {
	return NewLogger(c.LogLevel, c.LogFormat, outW)
}
