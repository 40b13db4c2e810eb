package repository

import (
	"context"
	"time"

	"panganjawara/internal/model"

	"gorm.io/gorm"
)

type PriceRepo interface {
	CreatePrices(ctx context.Context, prices []*model.CommodityPrice) error
	ListLatest(ctx context.Context, region string) ([]*model.CommodityPrice, error)
	ListHistory(ctx context.Context, commodity string, since time.Time) ([]*model.CommodityPrice, error)
	GetLatestRecordedAt(ctx context.Context) (time.Time, error)
}

type PriceRepoImpl struct {
	db *gorm.DB
}

func NewPriceRepo(db *gorm.DB) PriceRepo {
	return &PriceRepoImpl{db}
}

func (s *PriceRepoImpl) CreatePrices(ctx context.Context, prices []*model.CommodityPrice) error {
	if len(prices) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(prices).Error
}

// ListLatest mengambil harga pada tanggal pencatatan terakhir.
func (s *PriceRepoImpl) ListLatest(ctx context.Context, region string) ([]*model.CommodityPrice, error) {
	latest, err := s.GetLatestRecordedAt(ctx)
	if err != nil {
		return nil, err
	}
	if latest.IsZero() {
		return []*model.CommodityPrice{}, nil
	}

	var prices []*model.CommodityPrice
	query := s.db.WithContext(ctx).Where("recorded_at = ?", latest)
	if region != "" {
		query = query.Where("region = ?", region)
	}
	err = query.Order("commodity ASC").Find(&prices).Error
	return prices, err
}

func (s *PriceRepoImpl) ListHistory(ctx context.Context, commodity string, since time.Time) ([]*model.CommodityPrice, error) {
	var prices []*model.CommodityPrice
	err := s.db.WithContext(ctx).
		Where("commodity = ? AND recorded_at >= ?", commodity, since).
		Order("recorded_at ASC").
		Find(&prices).Error
	return prices, err
}

func (s *PriceRepoImpl) GetLatestRecordedAt(ctx context.Context) (time.Time, error) {
	var latest *time.Time
	err := s.db.WithContext(ctx).Model(&model.CommodityPrice{}).
		Select("MAX(recorded_at)").
		Scan(&latest).Error
	if err != nil || latest == nil {
		return time.Time{}, err
	}
	return *latest, nil
}
