package ctxutil

import "context"

type ctxKey string

const traceDataKey ctxKey = "trace_data"

// TraceData carries request correlation ids through the handler stack so log
// lines from one request can be stitched together.
type TraceData struct {
	TraceID   string
	RequestID string
}

func WithTraceData(ctx context.Context, td *TraceData) context.Context {
	if td == nil {
		return ctx
	}
	return context.WithValue(ctx, traceDataKey, td)
}

func GetTraceData(ctx context.Context) *TraceData {
	td, _ := ctx.Value(traceDataKey).(*TraceData)
	return td
}
