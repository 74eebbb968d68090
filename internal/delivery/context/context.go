// Package context carries per-request values between the echo layer and the usecases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeyUserID    ContextKey = "user_id"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

func valueOf[T any](ctx context.Context, key ContextKey) (T, bool) {
	v, ok := ctx.Value(key).(T)

	return v, ok
}

// GetRequestID returns the request id stored on c, or a fresh UUID when the request never
// went through the request id middleware.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns "" when ctx carries no request id.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := valueOf[string](ctx, KeyRequestID)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// WithUserID records the authenticated shopper on ctx.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, KeyUserID, userID)
}

// GetUserIDFromContext reports false for anonymous requests.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := valueOf[uuid.UUID](ctx, KeyUserID)

	return id, ok && id != uuid.Nil
}

// GetLogger returns nil when ctx carries no request-scoped logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := valueOf[*slog.Logger](ctx, KeyLogger)

	return logger
}

func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
