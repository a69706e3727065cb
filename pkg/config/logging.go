package config

import (
	"log/slog"
	"strings"
)

// LogLevels lists the accepted *_LOG_LEVEL values
var LogLevels = []string{"debug", "info", "warn", "error"}

// ParseLogLevel maps a level name to a slog.Level, defaulting to Info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
