package logger

import (
	"context"
	log "log/slog"
)

// TraceIDKey adalah key trace id di dalam context
const TraceIDKey = "trace_id"

// ContextHandler menambahkan trace_id dari context ke setiap record
type ContextHandler struct {
	log.Handler
}

func (h *ContextHandler) Handle(ctx context.Context, r log.Record) error {
	if ctx != nil {
		if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
			r.AddAttrs(log.String("trace_id", traceID))
		}
	}
	return h.Handler.Handle(ctx, r)
}
