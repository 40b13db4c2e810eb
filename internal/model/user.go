package model

import (
	"time"
)

// User adalah akun pengelola portal; pengunjung biasa tidak punya akun.
type User struct {
	ID        uint64    `gorm:"primaryKey"`
	Username  string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_username" json:"username"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex:idx_email" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null;default:editor" json:"role"`
	IsBan     bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_ban"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
