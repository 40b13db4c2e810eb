package repository

import (
	"context"
	"time"

	"panganjawara/internal/model"
	"panganjawara/internal/pkg/consts"

	"gorm.io/gorm"
)

type EventRepo interface {
	CreateEvent(ctx context.Context, event *model.Event, imageIDs []uint64) error
	GetEvent(ctx context.Context, id uint64) (*model.Event, error)
	ListEvents(ctx context.Context, status string, limit, offset int) ([]*model.Event, error)
	CountEvents(ctx context.Context, status string) (int64, error)
	ListUpcoming(ctx context.Context, after time.Time, limit int) ([]*model.Event, error)
	UpdateEvent(ctx context.Context, event *model.Event, imageIDs []uint64) error
	DeleteEvent(ctx context.Context, id uint64) error
	MarkFinishedEvents(ctx context.Context, before time.Time) (int64, error)
}

type EventRepoImpl struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) EventRepo {
	return &EventRepoImpl{db}
}

func (s *EventRepoImpl) CreateEvent(ctx context.Context, event *model.Event, imageIDs []uint64) error {
	if len(imageIDs) == 0 {
		return s.db.WithContext(ctx).Create(event).Error
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(event).Error; err != nil {
			return err
		}
		return tx.Model(&model.Image{}).
			Where("id IN ? AND owner_type = ?", imageIDs, consts.OwnerPending).
			Updates(map[string]interface{}{
				"owner_type": consts.OwnerEvent,
				"owner_id":   event.ID,
			}).Error
	})
}

func (s *EventRepoImpl) GetEvent(ctx context.Context, id uint64) (*model.Event, error) {
	var event model.Event
	err := s.db.WithContext(ctx).Preload("Images").First(&event, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *EventRepoImpl) ListEvents(ctx context.Context, status string, limit, offset int) ([]*model.Event, error) {
	var events []*model.Event
	query := s.db.WithContext(ctx).Preload("Images")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.
		Order("priority DESC, event_date ASC").
		Limit(limit).Offset(offset).
		Find(&events).Error
	return events, err
}

func (s *EventRepoImpl) CountEvents(ctx context.Context, status string) (int64, error) {
	var count int64
	query := s.db.WithContext(ctx).Model(&model.Event{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Count(&count).Error
	return count, err
}

// ListUpcoming mengambil agenda terdekat yang sudah dipublikasikan.
func (s *EventRepoImpl) ListUpcoming(ctx context.Context, after time.Time, limit int) ([]*model.Event, error) {
	var events []*model.Event
	err := s.db.WithContext(ctx).Preload("Images").
		Where("status = ? AND event_date >= ?", consts.EventStatusPublished, after).
		Order("event_date ASC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

func (s *EventRepoImpl) UpdateEvent(ctx context.Context, event *model.Event, imageIDs []uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Event{}).Where("id = ?", event.ID).Updates(event).Error; err != nil {
			return err
		}
		if len(imageIDs) == 0 {
			return nil
		}
		return tx.Model(&model.Image{}).
			Where("id IN ? AND owner_type = ?", imageIDs, consts.OwnerPending).
			Updates(map[string]interface{}{
				"owner_type": consts.OwnerEvent,
				"owner_id":   event.ID,
			}).Error
	})
}

func (s *EventRepoImpl) DeleteEvent(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Event{}, id).Error
}

// MarkFinishedEvents menutup acara terpublikasi yang tanggalnya sudah
// lewat; draft dan yang dibatalkan tidak disentuh.
func (s *EventRepoImpl) MarkFinishedEvents(ctx context.Context, before time.Time) (int64, error) {
	res := s.db.WithContext(ctx).Model(&model.Event{}).
		Where("status = ? AND event_date < ?", consts.EventStatusPublished, before).
		Update("status", consts.EventStatusDone)
	return res.RowsAffected, res.Error
}
