// Package environment names the deployment environment the server runs in.
package environment

import (
	"context"
	"log/slog"
	"strings"
)

// Environment is a deployment environment.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Parse maps common spellings ("prod", "stage", "dev") to an Environment.
// Anything unknown is treated as Development.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "production", "prod":
		return Production
	case "staging", "stage":
		return Staging
	default:
		return Development
	}
}

func (e Environment) String() string {
	return string(e)
}

// ExposesInternals reports whether internal error details may be shown to clients.
func (e Environment) ExposesInternals() bool {
	return e == Development
}

type contextKey struct{}

func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext returns the environment stored in ctx, or Production when
// none is set so that unconfigured callers fail closed.
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return Production
	}
	env, ok := ctx.Value(contextKey{}).(Environment)
	if !ok {
		return Production
	}
	return env
}

// LoggerExtractor adds the "env" attribute to log records.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		env, ok := ctx.Value(contextKey{}).(Environment)
		if !ok {
			return slog.Attr{}, false
		}
		return slog.String("env", string(env)), true
	}
}
