package model

import (
	"time"
)

// Like menyimpan status suka per pengunjung; kunci pengunjung
// pseudo-anonim menggantikan akun pengguna.
type Like struct {
	ViewerKey string    `gorm:"primaryKey;type:varchar(16)" json:"viewer_key"`
	PostID    uint64    `gorm:"primaryKey;index:idx_post_id" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}

type CommentLike struct {
	ViewerKey string    `gorm:"primaryKey;type:varchar(16)" json:"viewer_key"`
	CommentID uint64    `gorm:"primaryKey;index:idx_comment_id" json:"comment_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}
