// Package requestcontext provides context accessors for operation-scoped
// values set by entrypoints (the importer, ops endpoints, tests) and consumed
// by services. Keeping it free of transport dependencies lets services import
// only what they need.
package requestcontext

import (
	"context"
	"time"
)

type (
	runIDKey       struct{}
	requestTimeKey struct{}
)

// Exported context keys for tests that need context.WithValue directly.
var (
	ContextKeyRunID       = runIDKey{}
	ContextKeyRequestTime = requestTimeKey{}
)

// RunID retrieves the import-run identifier from the context.
func RunID(ctx context.Context) string {
	if id, ok := ctx.Value(ContextKeyRunID).(string); ok {
		return id
	}
	return ""
}

// WithRunID injects an import-run identifier into the context.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ContextKeyRunID, id)
}

// Now retrieves the operation-scoped time from context.
// Falls back to time.Now() when not set (workers, CLI, tests).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyRequestTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context. Useful for service unit
// tests and for batch runs that need a consistent timestamp across records.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, t)
}
