package service

import (
	"context"
	"strings"
	"time"

	"panganjawara/internal/api/dto"
	"panganjawara/internal/model"
	"panganjawara/internal/pkg/consts"
	"panganjawara/internal/repository"

	"github.com/jinzhu/copier"
)

const eventDateLayout = "2006-01-02 15:04"

type EventService interface {
	ListEvents(ctx context.Context, status string, page, pageSize int) ([]*dto.EventDTO, int64, error)
	ListUpcoming(ctx context.Context, limit int) ([]*dto.EventDTO, error)
	GetEvent(ctx context.Context, id uint64) (*dto.EventDTO, error)
	CreateEvent(ctx context.Context, req *dto.CreateEventDTO) (*dto.EventDTO, error)
	UpdateEvent(ctx context.Context, id uint64, req *dto.UpdateEventDTO) (*dto.EventDTO, error)
	DeleteEvent(ctx context.Context, id uint64) error
	CloseFinishedEvents(ctx context.Context) (int64, error)
}

type eventServiceImpl struct {
	eventRepo repository.EventRepo
}

func NewEventService(eventRepo repository.EventRepo) EventService {
	return &eventServiceImpl{eventRepo: eventRepo}
}

func (s *eventServiceImpl) ListEvents(ctx context.Context, status string, page, pageSize int) ([]*dto.EventDTO, int64, error) {
	if page < 1 || pageSize < 1 {
		return nil, 0, ErrPageOutOfRange
	}

	total, err := s.eventRepo.CountEvents(ctx, status)
	if err != nil {
		return nil, 0, err
	}

	events, err := s.eventRepo.ListEvents(ctx, status, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}

	return s.convertList(events), total, nil
}

func (s *eventServiceImpl) ListUpcoming(ctx context.Context, limit int) ([]*dto.EventDTO, error) {
	events, err := s.eventRepo.ListUpcoming(ctx, time.Now(), limit)
	if err != nil {
		return nil, err
	}
	return s.convertList(events), nil
}

func (s *eventServiceImpl) GetEvent(ctx context.Context, id uint64) (*dto.EventDTO, error) {
	event, err := s.eventRepo.GetEvent(ctx, id)
	if err != nil {
		return nil, ErrEventNotFound
	}
	return s.convertToEventDTO(event), nil
}

func (s *eventServiceImpl) CreateEvent(ctx context.Context, req *dto.CreateEventDTO) (*dto.EventDTO, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrParamInvalid
	}
	eventDate, err := time.Parse(eventDateLayout, req.EventDate)
	if err != nil {
		return nil, ErrParamInvalid
	}

	status := req.Status
	if status == "" {
		status = consts.EventStatusDraft
	}

	event := &model.Event{
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		EventDate:       eventDate,
		DurationMinutes: req.DurationMinutes,
		Location:        req.Location,
		ZoomLink:        req.ZoomLink,
		MeetingID:       req.MeetingID,
		Passcode:        req.Passcode,
		MaxParticipants: req.MaxParticipants,
		Status:          status,
		Priority:        req.Priority,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err = s.eventRepo.CreateEvent(ctx, event, req.ImageIDs); err != nil {
		return nil, err
	}

	created, err := s.eventRepo.GetEvent(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	return s.convertToEventDTO(created), nil
}

func (s *eventServiceImpl) UpdateEvent(ctx context.Context, id uint64, req *dto.UpdateEventDTO) (*dto.EventDTO, error) {
	event, err := s.eventRepo.GetEvent(ctx, id)
	if err != nil {
		return nil, ErrEventNotFound
	}

	if req.Title != "" {
		event.Title = strings.TrimSpace(req.Title)
	}
	if req.Description != "" {
		event.Description = req.Description
	}
	if req.EventDate != "" {
		eventDate, err := time.Parse(eventDateLayout, req.EventDate)
		if err != nil {
			return nil, ErrParamInvalid
		}
		event.EventDate = eventDate
	}
	if req.DurationMinutes != nil {
		event.DurationMinutes = *req.DurationMinutes
	}
	if req.Location != "" {
		event.Location = req.Location
	}
	if req.ZoomLink != "" {
		event.ZoomLink = req.ZoomLink
	}
	if req.MeetingID != "" {
		event.MeetingID = req.MeetingID
	}
	if req.Passcode != "" {
		event.Passcode = req.Passcode
	}
	if req.MaxParticipants != nil {
		event.MaxParticipants = *req.MaxParticipants
	}
	if req.Status != "" {
		event.Status = req.Status
	}
	if req.Priority != nil {
		event.Priority = *req.Priority
	}
	event.UpdatedAt = time.Now()

	if err = s.eventRepo.UpdateEvent(ctx, event, req.ImageIDs); err != nil {
		return nil, err
	}

	updated, err := s.eventRepo.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.convertToEventDTO(updated), nil
}

func (s *eventServiceImpl) DeleteEvent(ctx context.Context, id uint64) error {
	if _, err := s.eventRepo.GetEvent(ctx, id); err != nil {
		return ErrEventNotFound
	}
	return s.eventRepo.DeleteEvent(ctx, id)
}

// CloseFinishedEvents memindahkan acara terpublikasi yang tanggalnya
// sudah lewat ke status selesai; dipanggil job terjadwal.
func (s *eventServiceImpl) CloseFinishedEvents(ctx context.Context) (int64, error) {
	return s.eventRepo.MarkFinishedEvents(ctx, time.Now())
}

func (s *eventServiceImpl) convertList(events []*model.Event) []*dto.EventDTO {
	list := make([]*dto.EventDTO, 0, len(events))
	for _, event := range events {
		list = append(list, s.convertToEventDTO(event))
	}
	return list
}

func (s *eventServiceImpl) convertToEventDTO(event *model.Event) *dto.EventDTO {
	item := &dto.EventDTO{}
	_ = copier.Copy(item, event)
	item.EventDate = event.EventDate.Format(eventDateLayout)
	item.CreatedAt = event.CreatedAt.Format("2006-01-02 15:04:05")
	item.Images = ConvertImageDTOs(event.Images)
	return item
}
