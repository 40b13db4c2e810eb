package model

import (
	"time"
)

// Post adalah postingan komunitas; penulisnya bebas tanpa akun,
// identitas hanya berupa nama dan peran yang diisi sendiri.
type Post struct {
	ID            uint64    `gorm:"primaryKey"`
	Author        string    `gorm:"type:varchar(100);not null" json:"author"`
	AuthorRole    string    `gorm:"type:varchar(50)" json:"author_role"`
	Content       string    `gorm:"not null" json:"content"`
	Tags          []string  `gorm:"type:json;serializer:json" json:"tags"`
	LikesCount    int       `gorm:"not null;default:0" json:"likes_count"`
	SharesCount   int       `gorm:"not null;default:0" json:"shares_count"`
	CommentsCount int       `gorm:"not null;default:0" json:"comments_count"`
	ViewsCount    int       `gorm:"not null;default:0" json:"views_count"`
	IsDeleted     bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_deleted"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Images []Image `gorm:"polymorphic:Owner;polymorphicValue:post"`
}

func (Post) TableName() string {
	return "posts"
}
