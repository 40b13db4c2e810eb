package repository

import (
	"context"

	"panganjawara/internal/model"
	"panganjawara/internal/pkg/consts"

	"gorm.io/gorm"
)

// ArticleFilter membatasi daftar artikel; field kosong berarti tanpa filter.
type ArticleFilter struct {
	Status   string
	Category string
	Featured *bool
}

type ArticleRepo interface {
	CreateArticle(ctx context.Context, article *model.Article, imageIDs []uint64) error
	GetArticle(ctx context.Context, id uint64) (*model.Article, error)
	ListArticles(ctx context.Context, filter ArticleFilter, limit, offset int) ([]*model.Article, error)
	CountArticles(ctx context.Context, filter ArticleFilter) (int64, error)
	UpdateArticle(ctx context.Context, article *model.Article, imageIDs []uint64) error
	UpdateViewCount(ctx context.Context, id uint64, views int64) error
	DeleteArticle(ctx context.Context, id uint64) error
}

type ArticleRepoImpl struct {
	db *gorm.DB
}

func NewArticleRepo(db *gorm.DB) ArticleRepo {
	return &ArticleRepoImpl{db}
}

func (s *ArticleRepoImpl) CreateArticle(ctx context.Context, article *model.Article, imageIDs []uint64) error {
	if len(imageIDs) == 0 {
		return s.db.WithContext(ctx).Create(article).Error
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(article).Error; err != nil {
			return err
		}
		return tx.Model(&model.Image{}).
			Where("id IN ? AND owner_type = ?", imageIDs, consts.OwnerPending).
			Updates(map[string]interface{}{
				"owner_type": consts.OwnerArticle,
				"owner_id":   article.ID,
			}).Error
	})
}

func (s *ArticleRepoImpl) GetArticle(ctx context.Context, id uint64) (*model.Article, error) {
	var article model.Article
	err := s.db.WithContext(ctx).Preload("Images").First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (s *ArticleRepoImpl) applyFilter(query *gorm.DB, filter ArticleFilter) *gorm.DB {
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	return query
}

func (s *ArticleRepoImpl) ListArticles(ctx context.Context, filter ArticleFilter, limit, offset int) ([]*model.Article, error) {
	var articles []*model.Article
	query := s.applyFilter(s.db.WithContext(ctx).Preload("Images"), filter)
	err := query.
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&articles).Error
	return articles, err
}

func (s *ArticleRepoImpl) CountArticles(ctx context.Context, filter ArticleFilter) (int64, error) {
	var count int64
	query := s.applyFilter(s.db.WithContext(ctx).Model(&model.Article{}), filter)
	err := query.Count(&count).Error
	return count, err
}

func (s *ArticleRepoImpl) UpdateArticle(ctx context.Context, article *model.Article, imageIDs []uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Article{}).Where("id = ?", article.ID).Updates(article).Error; err != nil {
			return err
		}
		if len(imageIDs) == 0 {
			return nil
		}
		return tx.Model(&model.Image{}).
			Where("id IN ? AND owner_type = ?", imageIDs, consts.OwnerPending).
			Updates(map[string]interface{}{
				"owner_type": consts.OwnerArticle,
				"owner_id":   article.ID,
			}).Error
	})
}

func (s *ArticleRepoImpl) UpdateViewCount(ctx context.Context, id uint64, views int64) error {
	return s.db.WithContext(ctx).Model(&model.Article{}).
		Where("id = ?", id).
		Update("views_count", views).Error
}

func (s *ArticleRepoImpl) DeleteArticle(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Article{}, id).Error
}
