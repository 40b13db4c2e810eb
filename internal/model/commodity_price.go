package model

import (
	"time"
)

// CommodityPrice adalah satu titik harga komoditas pangan hasil scraping.
type CommodityPrice struct {
	ID         uint64    `gorm:"primaryKey"`
	Commodity  string    `gorm:"type:varchar(100);not null;index:idx_commodity" json:"commodity"`
	Unit       string    `gorm:"type:varchar(20);not null" json:"unit"`
	Price      int64     `gorm:"not null" json:"price"` // rupiah, tanpa pecahan
	Region     string    `gorm:"type:varchar(100);index:idx_region" json:"region"`
	Source     string    `gorm:"type:varchar(255)" json:"source"`
	RecordedAt time.Time `gorm:"not null;index:idx_recorded_at" json:"recorded_at"`
	CreatedAt  time.Time `json:"created_at"`
}

func (CommodityPrice) TableName() string {
	return "commodity_prices"
}
