// Package ctxlog carries a *slog.Logger through context.Context so that
// engine code can log without holding a logger field of its own.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is unexported to keep this context key from colliding with keys
// defined by other packages.
type key struct{}

var loggerKey = key{}

// WithLogger returns a child context carrying the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from a context, falling back to the
// process default logger when none was attached.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
