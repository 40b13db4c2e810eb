package handler

import (
	"strconv"

	"panganjawara/internal/api/dto"
	"panganjawara/internal/pkg/response"
	"panganjawara/internal/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	eventService service.EventService
}

func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// ListUpcoming adalah daftar singkat acara terdekat untuk halaman depan.
func (s *EventHandler) ListUpcoming(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 1 || limit > 20 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	events, err := s.eventService.ListUpcoming(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, events)
}

func (s *EventHandler) ListEvents(c *gin.Context) {
	page, pageSize, ok := parsePage(c, 20)
	if !ok {
		return
	}

	events, total, err := s.eventService.ListEvents(c.Request.Context(), c.Query("status"), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if totalPages == 0 {
		totalPages = 1
	}
	response.Success(c, &dto.EventListDTO{
		Events:      events,
		CurrentPage: page,
		TotalPages:  totalPages,
		Total:       total,
	})
}

func (s *EventHandler) GetEvent(c *gin.Context) {
	eventID, err := strconv.ParseUint(c.Param("event_id"), 10, 64)
	if err != nil || eventID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	event, err := s.eventService.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, event)
}

func (s *EventHandler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	event, err := s.eventService.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, event)
}

func (s *EventHandler) UpdateEvent(c *gin.Context) {
	eventID, err := strconv.ParseUint(c.Param("event_id"), 10, 64)
	if err != nil || eventID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.UpdateEventDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	event, err := s.eventService.UpdateEvent(c.Request.Context(), eventID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, event)
}

func (s *EventHandler) DeleteEvent(c *gin.Context) {
	eventID, err := strconv.ParseUint(c.Param("event_id"), 10, 64)
	if err != nil || eventID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.eventService.DeleteEvent(c.Request.Context(), eventID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
