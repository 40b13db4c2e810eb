package repository

import (
	"context"

	"panganjawara/internal/model"

	"gorm.io/gorm"
)

type StatsRepo interface {
	CountTotals(ctx context.Context) (*Totals, error)
	GetPopularPosts(ctx context.Context, limit int) ([]*model.Post, error)
}

// Totals adalah agregat mentah dari database untuk dashboard.
type Totals struct {
	Posts    int64
	Articles int64
	Events   int64
	Videos   int64
	Comments int64
	Likes    int64
	Users    int64
	Views    int64
}

type StatsRepoImpl struct {
	db *gorm.DB
}

func NewStatsRepo(db *gorm.DB) StatsRepo {
	return &StatsRepoImpl{db}
}

func (s *StatsRepoImpl) CountTotals(ctx context.Context) (*Totals, error) {
	var totals Totals
	db := s.db.WithContext(ctx)

	if err := db.Model(&model.Post{}).Where("is_deleted = ?", false).Count(&totals.Posts).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Article{}).Count(&totals.Articles).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Event{}).Count(&totals.Events).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Video{}).Count(&totals.Videos).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Comment{}).Where("is_deleted = ?", false).Count(&totals.Comments).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Like{}).Count(&totals.Likes).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.User{}).Count(&totals.Users).Error; err != nil {
		return nil, err
	}

	// total view = kolom denormalisasi postingan + artikel
	var postViews, articleViews int64
	if err := db.Model(&model.Post{}).Where("is_deleted = ?", false).
		Select("COALESCE(SUM(views_count), 0)").Scan(&postViews).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Article{}).
		Select("COALESCE(SUM(views_count), 0)").Scan(&articleViews).Error; err != nil {
		return nil, err
	}
	totals.Views = postViews + articleViews

	return &totals, nil
}

func (s *StatsRepoImpl) GetPopularPosts(ctx context.Context, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("likes_count DESC, comments_count DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}
