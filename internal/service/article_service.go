package service

import (
	"context"
	"fmt"
	log "log/slog"
	"strconv"
	"strings"
	"time"

	"panganjawara/internal/api/dto"
	"panganjawara/internal/model"
	"panganjawara/internal/pkg/consts"
	"panganjawara/internal/pkg/es"
	"panganjawara/internal/pkg/markdown"
	"panganjawara/internal/pkg/minio"
	"panganjawara/internal/pkg/redis"
	"panganjawara/internal/repository"

	"github.com/jinzhu/copier"
)

const excerptLength = 200

type ArticleService interface {
	ListArticles(ctx context.Context, filter repository.ArticleFilter, page, pageSize int) (*dto.ArticleListDTO, error)
	GetArticle(ctx context.Context, id uint64, publishedOnly bool) (*dto.ArticleDTO, error)
	CreateArticle(ctx context.Context, req *dto.CreateArticleDTO) (*dto.ArticleDTO, error)
	UpdateArticle(ctx context.Context, id uint64, req *dto.UpdateArticleDTO) (*dto.ArticleDTO, error)
	DeleteArticle(ctx context.Context, id uint64) error
	UpdateViewCount(ctx context.Context, id uint64, views int64) error
}

type articleServiceImpl struct {
	articleRepo repository.ArticleRepo
	esRepo      es.ContentRepo
	renderer    *markdown.Renderer
}

func NewArticleService(articleRepo repository.ArticleRepo, esRepo es.ContentRepo) ArticleService {
	return &articleServiceImpl{
		articleRepo: articleRepo,
		esRepo:      esRepo,
		renderer:    markdown.NewRenderer(),
	}
}

func (s *articleServiceImpl) ListArticles(ctx context.Context, filter repository.ArticleFilter, page, pageSize int) (*dto.ArticleListDTO, error) {
	if page < 1 || pageSize < 1 {
		return nil, ErrPageOutOfRange
	}

	total, err := s.articleRepo.CountArticles(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if totalPages == 0 {
		totalPages = 1
	}
	if page > totalPages {
		return nil, ErrPageOutOfRange
	}

	articles, err := s.articleRepo.ListArticles(ctx, filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.ArticleDTO, 0, len(articles))
	for _, article := range articles {
		// daftar tidak memuat HTML penuh, cukup metadata dan kutipan
		list = append(list, s.convertToArticleDTO(ctx, article, false))
	}

	return &dto.ArticleListDTO{
		Articles:    list,
		CurrentPage: page,
		TotalPages:  totalPages,
		Total:       total,
		Summary:     fmt.Sprintf("Halaman %d dari %d • %d total artikel", page, totalPages, total),
	}, nil
}

func (s *articleServiceImpl) GetArticle(ctx context.Context, id uint64, publishedOnly bool) (*dto.ArticleDTO, error) {
	article, err := s.articleRepo.GetArticle(ctx, id)
	if err != nil {
		return nil, ErrArticleNotFound
	}
	if publishedOnly && article.Status != consts.ArticleStatusPublished {
		return nil, ErrArticleNotFound
	}

	if publishedOnly {
		s.trackView(ctx, id)
	}

	return s.convertToArticleDTO(ctx, article, true), nil
}

func (s *articleServiceImpl) CreateArticle(ctx context.Context, req *dto.CreateArticleDTO) (*dto.ArticleDTO, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, ErrParamInvalid
	}

	status := req.Status
	if status == "" {
		status = consts.ArticleStatusDraft
	}

	article := &model.Article{
		Title:     strings.TrimSpace(req.Title),
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Author:    strings.TrimSpace(req.Author),
		Category:  req.Category,
		Tags:      req.Tags,
		Status:    status,
		Featured:  req.Featured,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if article.Excerpt == "" {
		article.Excerpt = s.renderer.Preview(article.Content, excerptLength)
	}
	if status == consts.ArticleStatusPublished {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := s.articleRepo.CreateArticle(ctx, article, req.ImageIDs); err != nil {
		return nil, err
	}

	s.syncIndex(ctx, article)

	created, err := s.articleRepo.GetArticle(ctx, article.ID)
	if err != nil {
		return nil, err
	}
	return s.convertToArticleDTO(ctx, created, true), nil
}

func (s *articleServiceImpl) UpdateArticle(ctx context.Context, id uint64, req *dto.UpdateArticleDTO) (*dto.ArticleDTO, error) {
	article, err := s.articleRepo.GetArticle(ctx, id)
	if err != nil {
		return nil, ErrArticleNotFound
	}

	if req.Title != "" {
		article.Title = strings.TrimSpace(req.Title)
	}
	if req.Excerpt != "" {
		article.Excerpt = req.Excerpt
	}
	if req.Content != "" {
		article.Content = req.Content
		if req.Excerpt == "" {
			article.Excerpt = s.renderer.Preview(article.Content, excerptLength)
		}
	}
	if req.Author != "" {
		article.Author = strings.TrimSpace(req.Author)
	}
	if req.Category != "" {
		article.Category = req.Category
	}
	if req.Tags != nil {
		article.Tags = req.Tags
	}
	if req.Featured != nil {
		article.Featured = *req.Featured
	}
	if req.Status != "" && req.Status != article.Status {
		article.Status = req.Status
		if req.Status == consts.ArticleStatusPublished && article.PublishedAt == nil {
			now := time.Now()
			article.PublishedAt = &now
		}
	}
	article.UpdatedAt = time.Now()

	if err = s.articleRepo.UpdateArticle(ctx, article, req.ImageIDs); err != nil {
		return nil, err
	}

	s.syncIndex(ctx, article)

	updated, err := s.articleRepo.GetArticle(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.convertToArticleDTO(ctx, updated, true), nil
}

func (s *articleServiceImpl) DeleteArticle(ctx context.Context, id uint64) error {
	if _, err := s.articleRepo.GetArticle(ctx, id); err != nil {
		return ErrArticleNotFound
	}
	if err := s.articleRepo.DeleteArticle(ctx, id); err != nil {
		return err
	}
	if err := s.esRepo.DeleteContent(ctx, es.DocTypeArticle, id); err != nil {
		log.WarnContext(ctx, "delete article from index failed", "id", id, "err", err)
	}
	return nil
}

func (s *articleServiceImpl) UpdateViewCount(ctx context.Context, id uint64, views int64) error {
	return s.articleRepo.UpdateViewCount(ctx, id, views)
}

func (s *articleServiceImpl) trackView(ctx context.Context, id uint64) {
	idStr := strconv.FormatUint(id, 10)
	_, _ = redis.Incr(ctx, consts.ArticleViewKey+idStr)
	_ = redis.SAdd(ctx, consts.ArticleDirtyKey, idStr)
}

// syncIndex mengindeks artikel published dan menghapus selainnya.
func (s *articleServiceImpl) syncIndex(ctx context.Context, article *model.Article) {
	if article.Status != consts.ArticleStatusPublished {
		if err := s.esRepo.DeleteContent(ctx, es.DocTypeArticle, article.ID); err != nil {
			log.WarnContext(ctx, "remove unpublished article from index failed", "id", article.ID, "err", err)
		}
		return
	}

	doc := &es.ContentES{
		ID:           article.ID,
		DocType:      es.DocTypeArticle,
		Title:        article.Title,
		PlainContent: markdown.PlainText(article.Content),
		Author:       article.Author,
		Tags:         article.Tags,
		Status:       article.Status,
		CreatedAt:    article.CreatedAt,
	}
	if err := s.esRepo.IndexContent(ctx, doc, article.UpdatedAt.UnixMilli()); err != nil {
		log.WarnContext(ctx, "index article failed", "id", article.ID, "err", err)
	}
}

func (s *articleServiceImpl) convertToArticleDTO(ctx context.Context, article *model.Article, withHTML bool) *dto.ArticleDTO {
	item := &dto.ArticleDTO{}
	_ = copier.Copy(item, article)

	item.ViewCount = s.viewCount(ctx, article)
	item.CreatedAt = article.CreatedAt.Format("2006-01-02 15:04:05")
	if article.PublishedAt != nil {
		item.PublishedAt = article.PublishedAt.Format("2006-01-02 15:04:05")
	}
	item.Images = ConvertImageDTOs(article.Images)
	if item.Tags == nil {
		item.Tags = make([]string, 0)
	}

	if withHTML {
		refs := make([]markdown.ImageRef, 0, len(article.Images))
		for _, img := range article.Images {
			refs = append(refs, markdown.ImageRef{
				ID:  strconv.FormatUint(img.ID, 10),
				URL: minio.GetPublicURL(img.FileKey),
				Alt: img.OriginalName,
			})
		}
		html, err := s.renderer.Render(article.Content, refs)
		if err != nil {
			log.WarnContext(ctx, "render article failed", "id", article.ID, "err", err)
		}
		item.ContentHTML = html
	}

	return item
}

func (s *articleServiceImpl) viewCount(ctx context.Context, article *model.Article) int64 {
	key := consts.ArticleViewKey + strconv.FormatUint(article.ID, 10)
	count, err := redis.GetInt64(ctx, key)
	if err == nil {
		return count
	}
	_ = redis.SetWithExpiration(ctx, key, article.ViewsCount, cacheExpiration)
	return int64(article.ViewsCount)
}
