package repository

import (
	"context"

	"panganjawara/internal/model"
	"panganjawara/internal/pkg/consts"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post, imageIDs []uint64) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	GetPostByIds(ctx context.Context, ids []uint64) ([]*model.Post, error)
	ListPosts(ctx context.Context, filter string, limit, offset int) ([]*model.Post, error)
	CountPosts(ctx context.Context, filter string) (int64, error)
	UpdatePostCounts(ctx context.Context, id uint64, likes, shares, comments, views int64) error
	DeletePost(ctx context.Context, id uint64) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

// CreatePost membuat postingan dan mengklaim gambar pending miliknya
// dalam satu transaksi.
func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post, imageIDs []uint64) error {
	if len(imageIDs) == 0 {
		return s.db.WithContext(ctx).Create(post).Error
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		return tx.Model(&model.Image{}).
			Where("id IN ? AND owner_type = ?", imageIDs, consts.OwnerPending).
			Updates(map[string]interface{}{
				"owner_type": consts.OwnerPost,
				"owner_id":   post.ID,
			}).Error
	})
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).Preload("Images").
		Where("is_deleted = ?", false).
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostRepoImpl) GetPostByIds(ctx context.Context, ids []uint64) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).Preload("Images").
		Where("id IN ? AND is_deleted = ?", ids, false).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// ListPosts menerapkan filter feed: trending menyaring dengan ambang
// like/komentar, popular mengurutkan berdasarkan jumlah like, sisanya
// kronologis terbaru dulu.
func (s *PostRepoImpl) ListPosts(ctx context.Context, filter string, limit, offset int) ([]*model.Post, error) {
	var posts []*model.Post
	query := s.db.WithContext(ctx).Preload("Images").
		Where("is_deleted = ?", false)
	order := "created_at DESC"
	switch filter {
	case consts.FeedFilterTrending:
		query = query.Where("likes_count > ? OR comments_count > ?", consts.TrendingLikeThreshold, consts.TrendingCommentThreshold)
	case consts.FeedFilterPopular:
		order = "likes_count DESC, comments_count DESC, created_at DESC"
	}
	err := query.
		Order(order).
		Limit(limit).Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (s *PostRepoImpl) CountPosts(ctx context.Context, filter string) (int64, error) {
	var count int64
	query := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("is_deleted = ?", false)
	if filter == consts.FeedFilterTrending {
		query = query.Where("likes_count > ? OR comments_count > ?", consts.TrendingLikeThreshold, consts.TrendingCommentThreshold)
	}
	err := query.Count(&count).Error
	return count, err
}

func (s *PostRepoImpl) UpdatePostCounts(ctx context.Context, id uint64, likes, shares, comments, views int64) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"likes_count":    likes,
			"shares_count":   shares,
			"comments_count": comments,
			"views_count":    views,
		}).Error
}

func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}
