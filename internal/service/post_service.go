package service

import (
	"context"
	"fmt"
	log "log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"panganjawara/internal/api/config"
	"panganjawara/internal/api/dto"
	"panganjawara/internal/model"
	"panganjawara/internal/pkg/consts"
	"panganjawara/internal/pkg/es"
	"panganjawara/internal/pkg/kafka"
	"panganjawara/internal/pkg/markdown"
	"panganjawara/internal/pkg/minio"
	"panganjawara/internal/repository"

	"github.com/jinzhu/copier"
)

type PostService interface {
	ListFeed(ctx context.Context, viewerKey string, page, pageSize int, filter string) (*dto.PostListDTO, error)
	GetPost(ctx context.Context, viewerKey string, id uint64) (*dto.PostDTO, error)
	CreatePost(ctx context.Context, req *dto.CreatePostDTO) (*dto.PostDTO, error)
	DeletePost(ctx context.Context, id uint64) error
	UpdatePostCounts(ctx context.Context, id uint64, likes, shares, comments, views int64) error
}

type postServiceImpl struct {
	postRepo  repository.PostRepo
	imageRepo repository.ImageRepo
	actionSvc PostActionService
	esRepo    es.ContentRepo
	producer  kafka.InteractionProducer
}

func NewPostService(
	postRepo repository.PostRepo,
	imageRepo repository.ImageRepo,
	actionSvc PostActionService,
	esRepo es.ContentRepo,
	producer kafka.InteractionProducer,
) PostService {
	return &postServiceImpl{
		postRepo:  postRepo,
		imageRepo: imageRepo,
		actionSvc: actionSvc,
		esRepo:    esRepo,
		producer:  producer,
	}
}

// ShareURL menyusun tautan kanonik sebuah postingan.
func ShareURL(postID uint64) string {
	base := strings.TrimRight(config.Cfg.Portal.BaseURL, "/")
	return base + "/posts/" + strconv.FormatUint(postID, 10)
}

// ListFeed mengembalikan satu halaman feed dalam amplop paginasi.
// Halaman di luar [1, totalPages] dan filter tak dikenal ditolak
// sebelum query daftar.
func (s *postServiceImpl) ListFeed(ctx context.Context, viewerKey string, page, pageSize int, filter string) (*dto.PostListDTO, error) {
	if page < 1 || pageSize < 1 {
		return nil, ErrPageOutOfRange
	}
	switch filter {
	case "", consts.FeedFilterAll, consts.FeedFilterRecent, consts.FeedFilterPopular, consts.FeedFilterTrending:
	default:
		return nil, ErrParamInvalid
	}

	total, err := s.postRepo.CountPosts(ctx, filter)
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

	posts, err := s.postRepo.ListPosts(ctx, filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	// urutan kronologis dijaga di sini juga, jangan bergantung pada
	// urutan query; popular memakai urutan like dari repo apa adanya
	if filter != consts.FeedFilterPopular {
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		})
	}

	postIDs := make([]uint64, 0, len(posts))
	for _, p := range posts {
		postIDs = append(postIDs, p.ID)
	}
	likedMap, _ := s.actionSvc.GetLikedPostIDs(ctx, viewerKey, postIDs)

	list := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		list = append(list, s.convertToPostDTO(ctx, post, likedMap[post.ID]))
	}

	return &dto.PostListDTO{
		Posts:       list,
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalPosts:  total,
		Summary:     fmt.Sprintf("Halaman %d dari %d • %d total postingan", page, totalPages, total),
	}, nil
}

func (s *postServiceImpl) GetPost(ctx context.Context, viewerKey string, id uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, id)
	if err != nil {
		return nil, ErrPostNotFound
	}

	if s.producer != nil {
		s.producer.EmitView(ctx, id, viewerKey)
	}

	isLiked, _ := s.actionSvc.IsLiked(ctx, viewerKey, id)
	return s.convertToPostDTO(ctx, post, isLiked), nil
}

func (s *postServiceImpl) CreatePost(ctx context.Context, req *dto.CreatePostDTO) (*dto.PostDTO, error) {
	if strings.TrimSpace(req.Author) == "" {
		return nil, ErrAuthorRequired
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrContentRequired
	}
	if len(req.ImageIDs) > consts.MaxCommentImages {
		return nil, ErrTooManyImages
	}

	post := &model.Post{
		Author:     strings.TrimSpace(req.Author),
		AuthorRole: strings.TrimSpace(req.AuthorRole),
		Content:    strings.TrimSpace(req.Content),
		Tags:       req.Tags,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := s.postRepo.CreatePost(ctx, post, req.ImageIDs); err != nil {
		return nil, err
	}

	s.indexPost(ctx, post)

	created, err := s.postRepo.GetPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	return s.convertToPostDTO(ctx, created, false), nil
}

func (s *postServiceImpl) DeletePost(ctx context.Context, id uint64) error {
	if _, err := s.postRepo.GetPost(ctx, id); err != nil {
		return ErrPostNotFound
	}
	if err := s.postRepo.DeletePost(ctx, id); err != nil {
		return err
	}
	if err := s.esRepo.DeleteContent(ctx, es.DocTypePost, id); err != nil {
		log.WarnContext(ctx, "delete post from index failed", "id", id, "err", err)
	}
	if err := s.imageRepo.ReleaseImages(ctx, consts.OwnerPost, id); err != nil {
		log.WarnContext(ctx, "release post images failed", "id", id, "err", err)
	}
	return nil
}

func (s *postServiceImpl) UpdatePostCounts(ctx context.Context, id uint64, likes, shares, comments, views int64) error {
	return s.postRepo.UpdatePostCounts(ctx, id, likes, shares, comments, views)
}

func (s *postServiceImpl) indexPost(ctx context.Context, post *model.Post) {
	doc := &es.ContentES{
		ID:           post.ID,
		DocType:      es.DocTypePost,
		PlainContent: markdown.PlainText(post.Content),
		Author:       post.Author,
		Tags:         post.Tags,
		Status:       "published",
		CreatedAt:    post.CreatedAt,
	}
	if err := s.esRepo.IndexContent(ctx, doc, post.UpdatedAt.UnixMilli()); err != nil {
		log.WarnContext(ctx, "index post failed", "id", post.ID, "err", err)
	}
}

func (s *postServiceImpl) convertToPostDTO(ctx context.Context, post *model.Post, isLiked bool) *dto.PostDTO {
	item := &dto.PostDTO{}
	_ = copier.Copy(item, post)

	item.LikeCount, _ = s.actionSvc.GetPostLikeCount(ctx, post.ID)
	item.ShareCount, _ = s.actionSvc.GetPostShareCount(ctx, post.ID)
	item.CommentCount, _ = s.actionSvc.GetPostCommentCount(ctx, post.ID)
	item.ViewCount, _ = s.actionSvc.GetPostViewCount(ctx, post.ID)
	item.IsLiked = isLiked
	item.IsTrending = item.LikeCount > consts.TrendingLikeThreshold ||
		item.CommentCount > consts.TrendingCommentThreshold
	item.CreatedAt = post.CreatedAt.Format("2006-01-02 15:04:05")

	item.Images = ConvertImageDTOs(post.Images)
	if item.Tags == nil {
		item.Tags = make([]string, 0)
	}
	return item
}

// ConvertImageDTOs memetakan lampiran gambar ke DTO dengan URL publik.
func ConvertImageDTOs(images []model.Image) []*dto.ImageDTO {
	res := make([]*dto.ImageDTO, 0, len(images))
	for _, img := range images {
		res = append(res, &dto.ImageDTO{
			ID:           img.ID,
			URL:          minio.GetPublicURL(img.FileKey),
			ThumbnailURL: minio.GetPublicURL(consts.ThumbPrefix + img.FileKey),
			MimeType:     img.MimeType,
			OriginalName: img.OriginalName,
			SortOrder:    img.SortOrder,
		})
	}
	return res
}
