package repository

import (
	"context"

	"panganjawara/internal/model"
	"panganjawara/internal/pkg/consts"

	"gorm.io/gorm"
)

type PostActionRepo interface {
	CreateLike(ctx context.Context, like *model.Like) error
	DeleteLike(ctx context.Context, viewerKey string, postID uint64) error
	CheckLikeExists(ctx context.Context, viewerKey string, postID uint64) (bool, error)
	GetLikeCountByPostID(ctx context.Context, postID uint64) (int64, error)
	GetLikedPostIDs(ctx context.Context, viewerKey string, postIDs []uint64) ([]uint64, error)

	CreateShare(ctx context.Context, share *model.Share) error
	GetShareCountByPostID(ctx context.Context, postID uint64) (int64, error)

	CreateComment(ctx context.Context, comment *model.Comment, imageIDs []uint64) error
	DeleteComment(ctx context.Context, commentID uint64) error
	GetCommentByID(ctx context.Context, commentID uint64) (*model.Comment, error)
	GetCommentsByPostID(ctx context.Context, postID uint64, limit, offset int) ([]*model.Comment, error)
	GetCommentCountByPostID(ctx context.Context, postID uint64) (int64, error)
	UpdateCommentLikesCount(ctx context.Context, commentID uint64, count int64) error

	CreateCommentLike(ctx context.Context, cl *model.CommentLike) error
	DeleteCommentLike(ctx context.Context, viewerKey string, commentID uint64) error
	CheckCommentLikeExists(ctx context.Context, viewerKey string, commentID uint64) (bool, error)
	GetCommentLikeCount(ctx context.Context, commentID uint64) (int64, error)
	GetLikedCommentIDs(ctx context.Context, viewerKey string, commentIDs []uint64) ([]uint64, error)
}

type PostActionRepoImpl struct {
	db *gorm.DB
}

func NewPostActionRepo(db *gorm.DB) PostActionRepo {
	return &PostActionRepoImpl{db}
}

func (s *PostActionRepoImpl) CreateLike(ctx context.Context, like *model.Like) error {
	return s.db.WithContext(ctx).Create(like).Error
}

func (s *PostActionRepoImpl) DeleteLike(ctx context.Context, viewerKey string, postID uint64) error {
	return s.db.WithContext(ctx).
		Where("viewer_key = ? AND post_id = ?", viewerKey, postID).
		Delete(&model.Like{}).Error
}

func (s *PostActionRepoImpl) CheckLikeExists(ctx context.Context, viewerKey string, postID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("viewer_key = ? AND post_id = ?", viewerKey, postID).
		Count(&count).Error
	return count > 0, err
}

func (s *PostActionRepoImpl) GetLikeCountByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

// GetLikedPostIDs memilih id yang disukai pengunjung dari kumpulan id
// yang sedang tampil; dipakai untuk mengisi is_liked di feed.
func (s *PostActionRepoImpl) GetLikedPostIDs(ctx context.Context, viewerKey string, postIDs []uint64) ([]uint64, error) {
	var liked []uint64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("viewer_key = ? AND post_id IN ?", viewerKey, postIDs).
		Pluck("post_id", &liked).Error
	return liked, err
}

func (s *PostActionRepoImpl) CreateShare(ctx context.Context, share *model.Share) error {
	return s.db.WithContext(ctx).Create(share).Error
}

func (s *PostActionRepoImpl) GetShareCountByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Share{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

// CreateComment membuat komentar dan mengklaim gambar pending miliknya
// dalam satu transaksi, pola yang sama dengan pembuatan postingan.
func (s *PostActionRepoImpl) CreateComment(ctx context.Context, comment *model.Comment, imageIDs []uint64) error {
	if len(imageIDs) == 0 {
		return s.db.WithContext(ctx).Create(comment).Error
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Model(&model.Image{}).
			Where("id IN ? AND owner_type = ?", imageIDs, consts.OwnerPending).
			Updates(map[string]interface{}{
				"owner_type": consts.OwnerComment,
				"owner_id":   comment.ID,
			}).Error
	})
}

func (s *PostActionRepoImpl) DeleteComment(ctx context.Context, commentID uint64) error {
	return s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("(id = ? OR parent_id = ?) AND is_deleted = ?", commentID, commentID, false).
		Update("is_deleted", true).Error
}

func (s *PostActionRepoImpl) GetCommentByID(ctx context.Context, commentID uint64) (*model.Comment, error) {
	var comment model.Comment
	err := s.db.WithContext(ctx).Preload("Images").
		Where("id = ? AND is_deleted = ?", commentID, false).
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *PostActionRepoImpl) GetCommentsByPostID(ctx context.Context, postID uint64, limit, offset int) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := s.db.WithContext(ctx).Preload("Images").
		Where("post_id = ? AND is_deleted = ?", postID, false).
		Order("created_at ASC").
		Limit(limit).Offset(offset).
		Find(&comments).Error
	return comments, err
}

func (s *PostActionRepoImpl) GetCommentCountByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("post_id = ? AND is_deleted = ?", postID, false).
		Count(&count).Error
	return count, err
}

func (s *PostActionRepoImpl) UpdateCommentLikesCount(ctx context.Context, commentID uint64, count int64) error {
	return s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ?", commentID).
		Update("likes_count", count).Error
}

func (s *PostActionRepoImpl) CreateCommentLike(ctx context.Context, cl *model.CommentLike) error {
	return s.db.WithContext(ctx).Create(cl).Error
}

func (s *PostActionRepoImpl) DeleteCommentLike(ctx context.Context, viewerKey string, commentID uint64) error {
	return s.db.WithContext(ctx).
		Where("viewer_key = ? AND comment_id = ?", viewerKey, commentID).
		Delete(&model.CommentLike{}).Error
}

func (s *PostActionRepoImpl) CheckCommentLikeExists(ctx context.Context, viewerKey string, commentID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.CommentLike{}).
		Where("viewer_key = ? AND comment_id = ?", viewerKey, commentID).
		Count(&count).Error
	return count > 0, err
}

func (s *PostActionRepoImpl) GetCommentLikeCount(ctx context.Context, commentID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.CommentLike{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	return count, err
}

func (s *PostActionRepoImpl) GetLikedCommentIDs(ctx context.Context, viewerKey string, commentIDs []uint64) ([]uint64, error) {
	var liked []uint64
	err := s.db.WithContext(ctx).Model(&model.CommentLike{}).
		Where("viewer_key = ? AND comment_id IN ?", viewerKey, commentIDs).
		Pluck("comment_id", &liked).Error
	return liked, err
}
