package model

import (
	"time"
)

// Image adalah berkas gambar di MinIO. Gambar diunggah lebih dulu
// dengan OwnerType pending, lalu diklaim saat konten induknya dibuat.
type Image struct {
	ID           uint64    `gorm:"primaryKey"`
	OwnerType    string    `gorm:"type:varchar(20);not null;index:idx_owner,priority:1" json:"owner_type"`
	OwnerID      uint64    `gorm:"not null;default:0;index:idx_owner,priority:2" json:"owner_id"`
	FileKey      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_file_key" json:"file_key"`
	MimeType     string    `gorm:"type:varchar(100);not null" json:"mime_type"`
	Size         int64     `gorm:"not null;default:0" json:"size"`
	OriginalName string    `gorm:"type:varchar(255)" json:"original_name"`
	SortOrder    int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Image) TableName() string {
	return "images"
}
