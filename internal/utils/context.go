// Package utils holds small helpers shared by the task service and the sync
// client: context keys, JWT handling, change-token hashing, id generation and
// HTTP plumbing.
package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey stores the authenticated user id (int64).
	UserIDCtxKey = contextKey("userID")
	// TraceIDCtxKey stores the request trace id (string).
	TraceIDCtxKey = contextKey("traceID")
)

// GetUserIDFromContext returns the authenticated user id stored in ctx.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetTraceIDFromContext returns the trace id stored in ctx, or "".
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
