package repository

import (
	"context"
	"time"

	"panganjawara/internal/model"
	"panganjawara/internal/pkg/consts"

	"gorm.io/gorm"
)

type ImageRepo interface {
	CreateImages(ctx context.Context, images []*model.Image) error
	GetByIDs(ctx context.Context, ids []uint64) ([]*model.Image, error)
	GetByID(ctx context.Context, id uint64) (*model.Image, error)
	GetByFileKey(ctx context.Context, fileKey string) (*model.Image, error)
	ClaimImages(ctx context.Context, ownerType string, ownerID uint64, ids []uint64) error
	ReleaseImages(ctx context.Context, ownerType string, ownerID uint64) error
	ListPendingBefore(ctx context.Context, before time.Time) ([]*model.Image, error)
	DeleteImage(ctx context.Context, id uint64) error
}

type ImageRepoImpl struct {
	db *gorm.DB
}

func NewImageRepo(db *gorm.DB) ImageRepo {
	return &ImageRepoImpl{db}
}

func (s *ImageRepoImpl) CreateImages(ctx context.Context, images []*model.Image) error {
	return s.db.WithContext(ctx).Create(images).Error
}

func (s *ImageRepoImpl) GetByIDs(ctx context.Context, ids []uint64) ([]*model.Image, error) {
	var images []*model.Image
	err := s.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("sort_order ASC").
		Find(&images).Error
	return images, err
}

func (s *ImageRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Image, error) {
	var image model.Image
	err := s.db.WithContext(ctx).First(&image, id).Error
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (s *ImageRepoImpl) GetByFileKey(ctx context.Context, fileKey string) (*model.Image, error) {
	var image model.Image
	err := s.db.WithContext(ctx).
		Where("file_key = ?", fileKey).
		First(&image).Error
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// ClaimImages memindahkan kepemilikan gambar pending ke konten induk.
// Hanya gambar pending yang bisa diklaim agar gambar konten lain tidak
// tercuri oleh id yang salah.
func (s *ImageRepoImpl) ClaimImages(ctx context.Context, ownerType string, ownerID uint64, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Model(&model.Image{}).
		Where("id IN ? AND owner_type = ?", ids, consts.OwnerPending).
		Updates(map[string]interface{}{
			"owner_type": ownerType,
			"owner_id":   ownerID,
		}).Error
}

// ReleaseImages mengembalikan gambar ke status pending saat induknya
// dihapus; job pembersih yang akan menghapus berkasnya.
func (s *ImageRepoImpl) ReleaseImages(ctx context.Context, ownerType string, ownerID uint64) error {
	return s.db.WithContext(ctx).Model(&model.Image{}).
		Where("owner_type = ? AND owner_id = ?", ownerType, ownerID).
		Updates(map[string]interface{}{
			"owner_type": consts.OwnerPending,
			"owner_id":   0,
		}).Error
}

func (s *ImageRepoImpl) ListPendingBefore(ctx context.Context, before time.Time) ([]*model.Image, error) {
	var images []*model.Image
	err := s.db.WithContext(ctx).
		Where("owner_type = ? AND created_at < ?", consts.OwnerPending, before).
		Find(&images).Error
	return images, err
}

func (s *ImageRepoImpl) DeleteImage(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Image{}, id).Error
}
