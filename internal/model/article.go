package model

import (
	"time"
)

// Article adalah artikel edukasi yang dikelola admin. Konten berformat
// markdown dan dapat memuat token gambar {{image:ID}}.
type Article struct {
	ID          uint64     `gorm:"primaryKey"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Excerpt     string     `gorm:"type:varchar(500)" json:"excerpt"`
	Content     string     `gorm:"not null" json:"content"`
	Author      string     `gorm:"type:varchar(100);not null" json:"author"`
	Category    string     `gorm:"type:varchar(50);index:idx_category" json:"category"`
	Tags        []string   `gorm:"type:json;serializer:json" json:"tags"`
	Status      string     `gorm:"type:varchar(20);not null;default:draft;index:idx_status" json:"status"`
	Featured    bool       `gorm:"type:tinyint(1);not null;default:0" json:"featured"`
	ViewsCount  int        `gorm:"not null;default:0" json:"views_count"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Images []Image `gorm:"polymorphic:Owner;polymorphicValue:article"`
}

func (Article) TableName() string {
	return "articles"
}
