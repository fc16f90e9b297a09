// Package context carries request-scoped values between the HTTP layer and
// background work started on behalf of a request.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"

	HeaderXRequestID = "X-Request-Id"

	// Longest client-supplied request ID that is echoed back
	MaxRequestIDLength = 128
)

// GetRequestID returns the request ID stored by the request ID middleware,
// or an empty string outside a request.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok {
		return id
	}

	return ""
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns "" when ctx carries no request ID.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
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

// Carry copies the request ID and logger of from onto to. Side effects run
// on their own context after the request has completed, so only these
// values survive, never the request's deadline or cancellation.
func Carry(from, to context.Context) context.Context {
	if requestID := GetRequestIDFromContext(from); requestID != "" {
		to = WithRequestID(to, requestID)
	}
	if logger := GetLogger(from); logger != nil {
		to = WithLogger(to, logger)
	}

	return to
}
