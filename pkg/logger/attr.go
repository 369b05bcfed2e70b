package logger

import (
	"log/slog"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}

func SessionID(id string) slog.Attr {
	return slog.String("session_id", id)
}

// GCLID records the ad click identifier under the key "gclid".
func GCLID(gclid string) slog.Attr {
	return slog.String("gclid", gclid)
}

func Locale(locale string) slog.Attr {
	return slog.String("locale", locale)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// State records a pipeline state name under the key "state".
func State(name string) slog.Attr {
	return slog.String("state", name)
}
