// Package logging defines the structured logging interface the server and
// its components log through, decoupling them from the concrete backend.
package logging

import "context"

// Logger is a context-aware structured logger. The variadic args are
// alternating keys and values:
//
//	log.Info(ctx, "grpc server starting", "addr", addr)
type Logger interface {
	// Info logs routine operational events.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that includes the given pairs on every line.
	With(args ...any) Logger
}
