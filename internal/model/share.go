package model

import (
	"time"
)

// Share dicatat per kejadian; membagikan dua kali tetap dihitung dua.
type Share struct {
	ID        uint64    `gorm:"primaryKey"`
	PostID    uint64    `gorm:"not null;index:idx_post_id" json:"post_id"`
	ViewerKey string    `gorm:"type:varchar(16);not null" json:"viewer_key"`
	CreatedAt time.Time `json:"created_at"`
}

func (Share) TableName() string {
	return "shares"
}
