package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/frontdoor/pkg/logger"
	"github.com/dmitrymomot/frontdoor/pkg/validator"
)

// StatusOf maps err to an HTTP status: HTTPError codes, 400 for validation
// failures and 500 otherwise.
func StatusOf(err error) int {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	if validator.IsValidationError(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// NewErrorHandler logs the failure (warn for 4xx, error for 5xx) and writes
// the status text. Internal details never reach the client.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}
	return func(ctx Context, err error) {
		status := StatusOf(err)
		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}

		r := ctx.Request()
		log.LogAttrs(r.Context(), level, "request failed",
			logger.Component("handler"),
			logger.Error(err),
			slog.Int("status", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		http.Error(ctx.ResponseWriter(), http.StatusText(status), status)
	}
}

func defaultErrorHandler(ctx Context, err error) {
	status := StatusOf(err)
	http.Error(ctx.ResponseWriter(), http.StatusText(status), status)
}
