package session

import (
	"context"
	"log/slog"
)

type sessionIDContextKey struct{}

// WithID adds the session identifier to the context.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDContextKey{}, id)
}

// IDFromContext retrieves the session identifier from the context.
func IDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(sessionIDContextKey{}).(string)
	return id, ok && id != ""
}

// LoggerExtractor returns a logger context extractor adding the session id.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := IDFromContext(ctx); ok {
			return slog.String("session_id", id), true
		}
		return slog.Attr{}, false
	}
}
