package service

import (
	"context"
	"testing"
	"time"

	"panganjawara/internal/model"
)

type mockEventRepo struct {
	events     map[uint64]*model.Event
	markBefore time.Time
	markCount  int64
}

func (m *mockEventRepo) CreateEvent(ctx context.Context, event *model.Event, imageIDs []uint64) error {
	event.ID = 1
	return nil
}

func (m *mockEventRepo) GetEvent(ctx context.Context, id uint64) (*model.Event, error) {
	event, ok := m.events[id]
	if !ok {
		return nil, ErrEventNotFound
	}
	return event, nil
}

func (m *mockEventRepo) ListEvents(ctx context.Context, status string, limit, offset int) ([]*model.Event, error) {
	return nil, nil
}

func (m *mockEventRepo) CountEvents(ctx context.Context, status string) (int64, error) {
	return 0, nil
}

func (m *mockEventRepo) ListUpcoming(ctx context.Context, after time.Time, limit int) ([]*model.Event, error) {
	return nil, nil
}

func (m *mockEventRepo) UpdateEvent(ctx context.Context, event *model.Event, imageIDs []uint64) error {
	return nil
}

func (m *mockEventRepo) DeleteEvent(ctx context.Context, id uint64) error { return nil }

func (m *mockEventRepo) MarkFinishedEvents(ctx context.Context, before time.Time) (int64, error) {
	m.markBefore = before
	return m.markCount, nil
}

func TestCloseFinishedEventsUsesCurrentTime(t *testing.T) {
	repo := &mockEventRepo{markCount: 3}
	svc := NewEventService(repo)

	start := time.Now()
	closed, err := svc.CloseFinishedEvents(context.Background())
	if err != nil {
		t.Fatalf("CloseFinishedEvents failed: %v", err)
	}

	if closed != 3 {
		t.Fatalf("expected 3 closed events, got %d", closed)
	}
	if repo.markBefore.Before(start) || repo.markBefore.After(time.Now()) {
		t.Fatalf("cutoff must be the current time, got %v", repo.markBefore)
	}
}
