package logging

import (
	"log/slog"
	"os"
)

// NewLogger returns a logger configured for the given environment.
// Production gets JSON output at info level, everything else gets
// human-readable text output at debug level.
func NewLogger(environment string) *slog.Logger {
	var handler slog.Handler

	if environment == "production" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}
