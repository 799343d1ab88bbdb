package attr

import (
	"context"
	"log/slog"
	"time"
)

type contextKey struct{}

// CorrelationIDKey names the correlation ID in message metadata and log
// attributes.
const CorrelationIDKey = "correlation_id"

var correlationIDContextKey contextKey

func String(key, value string) slog.Attr { return slog.String(key, value) }

func Int(key string, value int) slog.Attr { return slog.Int(key, value) }

func Int64(key string, value int64) slog.Attr { return slog.Int64(key, value) }

func Bool(key string, value bool) slog.Attr { return slog.Bool(key, value) }

func Any(key string, value any) slog.Attr { return slog.Any(key, value) }

func Duration(key string, value time.Duration) slog.Attr { return slog.Duration(key, value) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

// WithCorrelationID returns a context carrying the given correlation ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDContextKey, id)
}

// CorrelationIDFromContext returns the correlation ID stored in ctx, if any.
func CorrelationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(correlationIDContextKey).(string); ok {
		return id
	}
	return ""
}

// ExtractCorrelationID produces a log attribute for the correlation ID in ctx.
// Missing IDs log as an empty string rather than being omitted so log lines
// stay structurally uniform.
func ExtractCorrelationID(ctx context.Context) slog.Attr {
	return slog.String(CorrelationIDKey, CorrelationIDFromContext(ctx))
}
