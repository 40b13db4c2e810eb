package repository

import (
	"context"

	"panganjawara/internal/model"
	"panganjawara/internal/pkg/consts"

	"gorm.io/gorm"
)

type VideoRepo interface {
	CreateVideo(ctx context.Context, video *model.Video, imageIDs []uint64) error
	GetVideo(ctx context.Context, id uint64) (*model.Video, error)
	ListVideos(ctx context.Context, category string, limit, offset int) ([]*model.Video, error)
	CountVideos(ctx context.Context, category string) (int64, error)
	UpdateVideo(ctx context.Context, video *model.Video, imageIDs []uint64) error
	DeleteVideo(ctx context.Context, id uint64) error
}

type VideoRepoImpl struct {
	db *gorm.DB
}

func NewVideoRepo(db *gorm.DB) VideoRepo {
	return &VideoRepoImpl{db}
}

func (s *VideoRepoImpl) CreateVideo(ctx context.Context, video *model.Video, imageIDs []uint64) error {
	if len(imageIDs) == 0 {
		return s.db.WithContext(ctx).Create(video).Error
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(video).Error; err != nil {
			return err
		}
		return tx.Model(&model.Image{}).
			Where("id IN ? AND owner_type = ?", imageIDs, consts.OwnerPending).
			Updates(map[string]interface{}{
				"owner_type": consts.OwnerVideo,
				"owner_id":   video.ID,
			}).Error
	})
}

func (s *VideoRepoImpl) GetVideo(ctx context.Context, id uint64) (*model.Video, error) {
	var video model.Video
	err := s.db.WithContext(ctx).Preload("Images").First(&video, id).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (s *VideoRepoImpl) ListVideos(ctx context.Context, category string, limit, offset int) ([]*model.Video, error) {
	var videos []*model.Video
	query := s.db.WithContext(ctx).Preload("Images")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&videos).Error
	return videos, err
}

func (s *VideoRepoImpl) CountVideos(ctx context.Context, category string) (int64, error) {
	var count int64
	query := s.db.WithContext(ctx).Model(&model.Video{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Count(&count).Error
	return count, err
}

func (s *VideoRepoImpl) UpdateVideo(ctx context.Context, video *model.Video, imageIDs []uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Video{}).Where("id = ?", video.ID).Updates(video).Error; err != nil {
			return err
		}
		if len(imageIDs) == 0 {
			return nil
		}
		return tx.Model(&model.Image{}).
			Where("id IN ? AND owner_type = ?", imageIDs, consts.OwnerPending).
			Updates(map[string]interface{}{
				"owner_type": consts.OwnerVideo,
				"owner_id":   video.ID,
			}).Error
	})
}

func (s *VideoRepoImpl) DeleteVideo(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Video{}, id).Error
}
