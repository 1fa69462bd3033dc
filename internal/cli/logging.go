package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("invalid log level %q (expected debug|info|warn|error)", level)
	}
}

// NewLogger returns a JSON logger writing to w at the given level.
func NewLogger(level string, w io.Writer) (*slog.Logger, error) {
	parsed, err := parseLogLevel(level)
	if err != nil {
		return nil, err
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parsed})
	return slog.New(h), nil
}
