// Package logging wires zerolog loggers through context.
package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger attached to ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags every entry logged through the returned context with
// the subsystem that produced it, such as warp or config.
func WithComponent(ctx context.Context, component string) context.Context {
	return withField(ctx, "component", component)
}

// WithOutput tags entries with the output the cursor is on.
func WithOutput(ctx context.Context, output string) context.Context {
	return withField(ctx, "output", output)
}

func withField(ctx context.Context, key, value string) context.Context {
	return WithContext(ctx, FromContext(ctx).With().Str(key, value).Logger())
}
