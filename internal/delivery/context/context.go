// Package context carries request-scoped values from the HTTP delivery into use cases and
// outbound backend calls.
package context

import (
	"context"
	"log/slog"
)

// HeaderXRequestID is read from callers and forwarded to the platform backend.
const HeaderXRequestID = "X-Request-Id"

type key int

const (
	requestIDKey key = iota
	loggerKey
	viewerIDKey
)

// WithRequestID returns a copy of ctx carrying the request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestID returns the request id stored in ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithViewerID returns a copy of ctx carrying the authenticated viewer id.
func WithViewerID(ctx context.Context, viewerID string) context.Context {
	return context.WithValue(ctx, viewerIDKey, viewerID)
}

// ViewerID returns the viewer id stored in ctx, or "".
func ViewerID(ctx context.Context) string {
	id, _ := ctx.Value(viewerIDKey).(string)

	return id
}

// WithLogger returns a copy of ctx carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// Logger returns the request-scoped logger, falling back to fallback when ctx has none.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
