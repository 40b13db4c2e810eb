package model

import (
	"time"
)

// Video adalah tautan video edukasi, umumnya YouTube.
type Video struct {
	ID              uint64    `gorm:"primaryKey"`
	Title           string    `gorm:"type:varchar(255);not null" json:"title"`
	Description     string    `gorm:"type:varchar(1000)" json:"description"`
	VideoURL        string    `gorm:"type:varchar(500);not null" json:"video_url"`
	Category        string    `gorm:"type:varchar(50);index:idx_category" json:"category"`
	DurationSeconds int       `gorm:"not null;default:0" json:"duration_seconds"`
	ViewsCount      int       `gorm:"not null;default:0" json:"views_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Images []Image `gorm:"polymorphic:Owner;polymorphicValue:video"`
}

func (Video) TableName() string {
	return "videos"
}
