package dto

type EventDTO struct {
	ID              uint64 `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	EventDate       string `json:"event_date"`
	DurationMinutes int    `json:"duration_minutes"`
	Location        string `json:"location"`
	ZoomLink        string `json:"zoom_link"`
	MeetingID       string `json:"meeting_id"`
	Passcode        string `json:"passcode"`
	MaxParticipants int    `json:"max_participants"`
	Status          string `json:"status"`
	Priority        int    `json:"priority"`
	CreatedAt       string `json:"created_at"`

	Images []*ImageDTO `json:"images"`
}

type CreateEventDTO struct {
	Title           string   `json:"title" binding:"required" validate:"min=1,max=255"`
	Description     string   `json:"description"`
	EventDate       string   `json:"event_date" binding:"required"`
	DurationMinutes int      `json:"duration_minutes" validate:"min=0"`
	Location        string   `json:"location" validate:"max=255"`
	ZoomLink        string   `json:"zoom_link" validate:"omitempty,url"`
	MeetingID       string   `json:"meeting_id" validate:"max=50"`
	Passcode        string   `json:"passcode" validate:"max=50"`
	MaxParticipants int      `json:"max_participants" validate:"min=0"`
	Status          string   `json:"status" validate:"omitempty,oneof=draft published cancelled done"`
	Priority        int      `json:"priority"`
	ImageIDs        []uint64 `json:"image_ids"`
}

type UpdateEventDTO struct {
	Title           string   `json:"title" validate:"max=255"`
	Description     string   `json:"description"`
	EventDate       string   `json:"event_date"`
	DurationMinutes *int     `json:"duration_minutes" validate:"omitempty,min=0"`
	Location        string   `json:"location" validate:"max=255"`
	ZoomLink        string   `json:"zoom_link" validate:"omitempty,url"`
	MeetingID       string   `json:"meeting_id" validate:"max=50"`
	Passcode        string   `json:"passcode" validate:"max=50"`
	MaxParticipants *int     `json:"max_participants" validate:"omitempty,min=0"`
	Status          string   `json:"status" validate:"omitempty,oneof=draft published cancelled done"`
	Priority        *int     `json:"priority"`
	ImageIDs        []uint64 `json:"image_ids"`
}

type EventListDTO struct {
	Events      []*EventDTO `json:"events"`
	CurrentPage int         `json:"current_page"`
	TotalPages  int         `json:"total_pages"`
	Total       int64       `json:"total"`
}
