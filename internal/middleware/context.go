package middleware

import (
	"context"
	"waste-sorting-app/internal/logger"
)

// contextKey defines a custom type for context keys to avoid collisions.
type contextKey string

const loggerContextKey = contextKey("logger")

// LoggerFrom retrieves the request scoped logger, falling back to fallback
// when the request logger middleware did not run.
func LoggerFrom(ctx context.Context, fallback logger.Logger) logger.Logger {
	if log, ok := ctx.Value(loggerContextKey).(logger.Logger); ok {
		return log
	}
	return fallback
}

// WithLogger adds a logger to the request context.
func WithLogger(ctx context.Context, log logger.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, log)
}
