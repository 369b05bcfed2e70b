package i18n

import (
	"context"
	"log/slog"
)

type localeContextKey struct{}

// WithLocale binds the resolved locale to ctx for the rest of the request.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// LocaleFromContext returns the locale bound by WithLocale.
func LocaleFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	locale, ok := ctx.Value(localeContextKey{}).(string)
	return locale, ok && locale != ""
}

// LoggerExtractor returns a logger context extractor adding the request locale.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if locale, ok := LocaleFromContext(ctx); ok {
			return slog.String("locale", locale), true
		}
		return slog.Attr{}, false
	}
}
