// Package trace carries a request id and a span counter through a request
// context so inbound and outbound log lines can be correlated.
package trace

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

type ctxKey string

const ctxKeyTrace ctxKey = "trace_info"

// Info is the trace state of one inbound request. Outbound calls made while
// serving it get span ids 1, 2, 3, ...
type Info struct {
	RequestID string
	spanSeq   atomic.Int64
}

// GenerateID returns a new request id.
func GenerateID() string {
	return uuid.NewString()
}

// WithRequestID stores a fresh trace state for requestID in ctx.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyTrace, &Info{RequestID: requestID})
}

func infoFromContext(ctx context.Context) *Info {
	if ctx == nil {
		return nil
	}
	v, _ := ctx.Value(ctxKeyTrace).(*Info)
	return v
}

// RequestIDFromContext returns the request id, or "" outside a request.
func RequestIDFromContext(ctx context.Context) string {
	if info := infoFromContext(ctx); info != nil {
		return info.RequestID
	}
	return ""
}

// CurrentSpanID returns the last issued span id without advancing it.
func CurrentSpanID(ctx context.Context) string {
	info := infoFromContext(ctx)
	if info == nil {
		return "0"
	}
	return strconv.FormatInt(info.spanSeq.Load(), 10)
}

// NextSpanID advances the span counter and returns (requestID, spanID).
// Outside a traced request a new request id is generated with span "1".
func NextSpanID(ctx context.Context) (string, string) {
	info := infoFromContext(ctx)
	if info == nil {
		return GenerateID(), "1"
	}
	return info.RequestID, strconv.FormatInt(info.spanSeq.Add(1), 10)
}
