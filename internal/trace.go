package internal

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

type contextKey string

const traceIDKey contextKey = "traceID"

// newTraceID creates an identifier that ties the log lines of one inbound
// request together. Falls back to a timestamp when the random source fails.
func newTraceID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("t%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(bytes)
}

// withTrace attaches a trace identifier to the context unless one is already
// present.
func withTrace(ctx context.Context) context.Context {
	if _, ok := ctx.Value(traceIDKey).(string); ok {
		return ctx
	}
	return context.WithValue(ctx, traceIDKey, newTraceID())
}

// traceFrom returns the trace identifier of the context, empty if absent.
func traceFrom(ctx context.Context) string {
	if traceID, ok := ctx.Value(traceIDKey).(string); ok {
		return traceID
	}
	return ""
}
