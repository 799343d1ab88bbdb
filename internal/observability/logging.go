package observability

import (
	"log/slog"
	"os"
)

// NoOpLogger discards everything. Used by tests and as a safe default.
var NoOpLogger = slog.New(slog.DiscardHandler)

// NewLogger builds the process-wide JSON logger. Non-production environments
// log at debug level.
func NewLogger(environment string) *slog.Logger {
	level := slog.LevelInfo
	if environment != "production" {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("service", "rankbot"))
}
