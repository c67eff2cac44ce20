// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, trace identifiers,
// record id generation, and the signed session token codec.
package utils

import (
	"context"

	"github.com/lyra-school/lyra-client/internal/logger"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the key used to store the trace identifier of one user
// action in the context.
var TraceIDCtxKey = contextKey("traceID")

// GetTraceIDFromContext retrieves the trace identifier from the context.
// ok is false when no trace id was attached.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}

// WithTrace starts a traced user action: it attaches a fresh trace id to ctx
// together with a child of log carrying the same id as "trace_id", so that
// [logger.FromContext] returns it downstream.
func WithTrace(ctx context.Context, log *logger.Logger, gen *UUIDGenerator) context.Context {
	traceID := gen.Generate()

	child := log.GetChildLogger()
	child.Logger = child.With().Str("trace_id", traceID).Logger()

	ctx = context.WithValue(ctx, TraceIDCtxKey, traceID)
	return child.WithContext(ctx)
}
