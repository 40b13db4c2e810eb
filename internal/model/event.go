package model

import (
	"time"
)

// Event adalah agenda kegiatan: pelatihan, webinar, atau temu lapang.
type Event struct {
	ID              uint64    `gorm:"primaryKey"`
	Title           string    `gorm:"type:varchar(255);not null" json:"title"`
	Description     string    `json:"description"`
	EventDate       time.Time `gorm:"not null;index:idx_event_date" json:"event_date"`
	DurationMinutes int       `gorm:"not null;default:0" json:"duration_minutes"`
	Location        string    `gorm:"type:varchar(255)" json:"location"`
	ZoomLink        string    `gorm:"type:varchar(500)" json:"zoom_link"`
	MeetingID       string    `gorm:"type:varchar(50)" json:"meeting_id"`
	Passcode        string    `gorm:"type:varchar(50)" json:"passcode"`
	MaxParticipants int       `gorm:"not null;default:0" json:"max_participants"` // 0 berarti tanpa batas
	Status          string    `gorm:"type:varchar(20);not null;default:draft;index:idx_status" json:"status"`
	Priority        int       `gorm:"not null;default:0" json:"priority"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Images []Image `gorm:"polymorphic:Owner;polymorphicValue:event"`
}

func (Event) TableName() string {
	return "events"
}
