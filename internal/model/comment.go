package model

import (
	"time"
)

type Comment struct {
	ID         uint64    `gorm:"primaryKey"`
	PostID     uint64    `gorm:"not null;index:idx_post_id" json:"post_id"`
	ParentID   uint64    `gorm:"not null;default:0" json:"parent_id"` // 0 berarti komentar langsung ke postingan
	Author     string    `gorm:"type:varchar(100);not null" json:"author"`
	AuthorRole string    `gorm:"type:varchar(50)" json:"author_role"`
	Content    string    `gorm:"type:varchar(2000);not null" json:"content"`
	LikesCount int       `gorm:"not null;default:0" json:"likes_count"`
	IsDeleted  bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_deleted"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Images []Image `gorm:"polymorphic:Owner;polymorphicValue:comment"`
}

func (Comment) TableName() string {
	return "comments"
}
