package config

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger builds the service logger: JSON in production and staging, text otherwise
func NewLogger(w io.Writer, app AppConfig, logCfg LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(logCfg.Level),
	}

	var handler slog.Handler
	format := strings.ToLower(logCfg.Format)
	if format == "json" || (format == "" && (app.Environment == "production" || app.Environment == "staging")) {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(
		slog.String("app", app.Name),
		slog.String("version", app.Version),
	)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
