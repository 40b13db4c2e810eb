package job

import (
	"context"
	log "log/slog"

	"panganjawara/internal/pkg/logger"
	"panganjawara/internal/service"

	"github.com/google/uuid"
)

// EventStatusJob menutup acara terpublikasi yang tanggalnya sudah
// lewat, sehingga daftar agenda dan filter status tetap akurat tanpa
// campur tangan admin.
type EventStatusJob struct {
	eventSvc service.EventService
}

func NewEventStatusJob(eventSvc service.EventService) *EventStatusJob {
	return &EventStatusJob{eventSvc: eventSvc}
}

func (s *EventStatusJob) Run() {
	traceID := "job-event-status-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	closed, err := s.eventSvc.CloseFinishedEvents(ctx)
	if err != nil {
		log.ErrorContext(ctx, "close finished events error", "err", err)
		return
	}
	if closed > 0 {
		log.InfoContext(ctx, "finished events closed", "count", closed)
	}
}
