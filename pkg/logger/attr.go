package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". A nil err yields an empty Attr, which slog
// drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request correlation id under "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Pillar records a pillar display name.
func Pillar(name string) slog.Attr {
	return slog.String("pillar", name)
}

// Slug records a requested pillar slug as received.
func Slug(s string) slog.Attr {
	return slog.String("slug", s)
}

// Category records a pillar category letter.
func Category(c string) slog.Attr {
	return slog.String("category", c)
}

// HTTPRequest groups method, path and status of a served request.
func HTTPRequest(method, path string, status int) slog.Attr {
	return slog.Group("http",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
	)
}
