package logger

import (
	"log/slog"
	"time"
)

// Error returns an empty Attr for a nil error, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func UserID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("user_id", id)
}

// Resource names the content type being handled, e.g. "gallery".
func Resource(name string) slog.Attr {
	return slog.String("resource", name)
}

func ResourceID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("resource_id", id)
}

// Field names the request field a validation failure refers to.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

func Lang(code string) slog.Attr {
	return slog.String("lang", code)
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

// HTTP groups the method, path and status of a request.
func HTTP(method, path string, status int) slog.Attr {
	return slog.Group("http",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
	)
}
