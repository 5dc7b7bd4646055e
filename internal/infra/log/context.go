package logs

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	keyRequestID contextKey = "request_id"
	keyLogger    contextKey = "logger"
)

// WithRequestScope tags ctx with requestID and a child of logger carrying it.
// An empty requestID is replaced by a new UUID.
func WithRequestScope(ctx context.Context, logger *slog.Logger, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.NewString()
	}

	ctx = context.WithValue(ctx, keyRequestID, requestID)

	return context.WithValue(ctx, keyLogger, logger.With(slog.String("request_id", requestID)))
}

// RequestID returns the request ID stored in ctx, or "".
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(keyRequestID).(string); ok {
		return id
	}

	return ""
}

// FromContext returns the request-scoped logger, or fallback when ctx has none.
func FromContext(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok {
		return logger
	}

	return fallback
}
