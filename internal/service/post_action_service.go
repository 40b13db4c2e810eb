package service

import (
	"context"
	"errors"
	log "log/slog"
	"strconv"
	"strings"
	"time"

	"panganjawara/internal/api/dto"
	"panganjawara/internal/model"
	"panganjawara/internal/pkg/consts"
	"panganjawara/internal/pkg/kafka"
	"panganjawara/internal/repository"

	"github.com/go-sql-driver/mysql"
	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

const cacheExpiration = 7 * 24 * time.Hour

type PostActionService interface {
	ToggleLike(ctx context.Context, viewerKey string, postID uint64) (*dto.LikeResultDTO, error)
	SharePost(ctx context.Context, viewerKey string, postID uint64) (*dto.ShareResultDTO, error)
	IsLiked(ctx context.Context, viewerKey string, postID uint64) (bool, error)
	GetLikedPostIDs(ctx context.Context, viewerKey string, postIDs []uint64) (map[uint64]bool, error)

	CreateComment(ctx context.Context, viewerKey string, postID uint64, req *dto.CreateCommentDTO) (*dto.CommentDTO, error)
	DeleteComment(ctx context.Context, commentID uint64) error
	GetCommentsByPostID(ctx context.Context, viewerKey string, postID uint64, page, pageSize int) ([]*dto.CommentDTO, error)
	ToggleCommentLike(ctx context.Context, viewerKey string, commentID uint64) (*dto.LikeResultDTO, error)

	GetPostLikeCount(ctx context.Context, postID uint64) (int64, error)
	GetPostShareCount(ctx context.Context, postID uint64) (int64, error)
	GetPostCommentCount(ctx context.Context, postID uint64) (int64, error)
	GetPostViewCount(ctx context.Context, postID uint64) (int64, error)
	GetCommentLikeCount(ctx context.Context, commentID uint64) (int64, error)
}

type postActionServiceImpl struct {
	actionRepo repository.PostActionRepo
	postRepo   repository.PostRepo
	cache      CounterCache
	producer   kafka.InteractionProducer
}

func NewPostActionService(
	actionRepo repository.PostActionRepo,
	postRepo repository.PostRepo,
	cache CounterCache,
	producer kafka.InteractionProducer,
) PostActionService {
	return &postActionServiceImpl{
		actionRepo: actionRepo,
		postRepo:   postRepo,
		cache:      cache,
		producer:   producer,
	}
}

// ToggleLike membalik status suka dan mengembalikan keadaan akhir.
// Nilai kembalian inilah sumber kebenaran, bukan tebakan klien.
func (s *postActionServiceImpl) ToggleLike(ctx context.Context, viewerKey string, postID uint64) (*dto.LikeResultDTO, error) {
	if err := s.checkPostExists(ctx, postID); err != nil {
		return nil, err
	}

	liked, err := s.actionRepo.CheckLikeExists(ctx, viewerKey, postID)
	if err != nil {
		return nil, err
	}

	if liked {
		if err = s.actionRepo.DeleteLike(ctx, viewerKey, postID); err != nil {
			return nil, err
		}
	} else {
		err = s.actionRepo.CreateLike(ctx, &model.Like{
			ViewerKey: viewerKey,
			PostID:    postID,
			CreatedAt: time.Now(),
		})
		if err != nil && !isDuplicateError(err) {
			return nil, err
		}
	}

	count, err := s.refreshLikeCount(ctx, postID)
	if err != nil {
		return nil, err
	}

	s.markDirtyAndBroadcast(ctx, postID)

	return &dto.LikeResultDTO{Liked: !liked, LikeCount: count}, nil
}

// SharePost selalu menambah hitungan; membagikan ulang tetap dihitung.
func (s *postActionServiceImpl) SharePost(ctx context.Context, viewerKey string, postID uint64) (*dto.ShareResultDTO, error) {
	if err := s.checkPostExists(ctx, postID); err != nil {
		return nil, err
	}

	err := s.actionRepo.CreateShare(ctx, &model.Share{
		PostID:    postID,
		ViewerKey: viewerKey,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}

	if s.producer != nil {
		s.producer.EmitShare(ctx, postID, viewerKey)
	}

	idStr := strconv.FormatUint(postID, 10)
	_ = s.cache.Delete(ctx, consts.PostShareKey+idStr)
	count, err := s.GetPostShareCount(ctx, postID)
	if err != nil {
		return nil, err
	}

	s.markDirtyAndBroadcast(ctx, postID)

	return &dto.ShareResultDTO{
		ShareCount: count,
		ShareURL:   ShareURL(postID),
	}, nil
}

func (s *postActionServiceImpl) IsLiked(ctx context.Context, viewerKey string, postID uint64) (bool, error) {
	if viewerKey == "" {
		return false, nil
	}
	return s.actionRepo.CheckLikeExists(ctx, viewerKey, postID)
}

func (s *postActionServiceImpl) GetLikedPostIDs(ctx context.Context, viewerKey string, postIDs []uint64) (map[uint64]bool, error) {
	likedMap := make(map[uint64]bool)
	if viewerKey == "" || len(postIDs) == 0 {
		return likedMap, nil
	}
	liked, err := s.actionRepo.GetLikedPostIDs(ctx, viewerKey, postIDs)
	if err != nil {
		return nil, err
	}
	for _, id := range liked {
		likedMap[id] = true
	}
	return likedMap, nil
}

// CreateComment menolak komentar tanpa nama atau isi sebelum menyentuh
// database sama sekali. Lampiran gambar diklaim dari status pending
// bersama pembuatan komentarnya.
func (s *postActionServiceImpl) CreateComment(ctx context.Context, viewerKey string, postID uint64, req *dto.CreateCommentDTO) (*dto.CommentDTO, error) {
	if strings.TrimSpace(req.Author) == "" {
		return nil, ErrAuthorRequired
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrContentRequired
	}
	if len(req.ImageIDs) > consts.MaxCommentImages {
		return nil, ErrTooManyImages
	}

	if err := s.checkPostExists(ctx, postID); err != nil {
		return nil, err
	}

	if req.ParentID > 0 {
		parent, err := s.actionRepo.GetCommentByID(ctx, req.ParentID)
		if err != nil || parent == nil || parent.PostID != postID {
			return nil, ErrCommentNotFound
		}
	}

	comment := &model.Comment{
		PostID:     postID,
		ParentID:   req.ParentID,
		Author:     strings.TrimSpace(req.Author),
		AuthorRole: strings.TrimSpace(req.AuthorRole),
		Content:    strings.TrimSpace(req.Content),
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := s.actionRepo.CreateComment(ctx, comment, req.ImageIDs); err != nil {
		return nil, err
	}

	// baca ulang supaya lampiran yang baru diklaim ikut terbawa
	if len(req.ImageIDs) > 0 {
		created, err := s.actionRepo.GetCommentByID(ctx, comment.ID)
		if err != nil || created == nil {
			return nil, ErrCommentNotFound
		}
		comment = created
	}

	idStr := strconv.FormatUint(postID, 10)
	_ = s.cache.Delete(ctx, consts.PostCommentKey+idStr)
	s.markDirtyAndBroadcast(ctx, postID)

	return s.convertToCommentDTO(comment, 0, false), nil
}

func (s *postActionServiceImpl) DeleteComment(ctx context.Context, commentID uint64) error {
	comment, err := s.actionRepo.GetCommentByID(ctx, commentID)
	if err != nil || comment == nil {
		return ErrCommentNotFound
	}

	if err = s.actionRepo.DeleteComment(ctx, commentID); err != nil {
		return err
	}

	idStr := strconv.FormatUint(comment.PostID, 10)
	_ = s.cache.Delete(ctx, consts.PostCommentKey+idStr)
	s.markDirtyAndBroadcast(ctx, comment.PostID)
	return nil
}

func (s *postActionServiceImpl) GetCommentsByPostID(ctx context.Context, viewerKey string, postID uint64, page, pageSize int) ([]*dto.CommentDTO, error) {
	if page < 1 || pageSize < 1 {
		return nil, ErrPageOutOfRange
	}

	comments, err := s.actionRepo.GetCommentsByPostID(ctx, postID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	commentIDs := make([]uint64, 0, len(comments))
	for _, c := range comments {
		commentIDs = append(commentIDs, c.ID)
	}

	isLikedMap := make(map[uint64]bool)
	if viewerKey != "" && len(commentIDs) > 0 {
		likedIDs, err := s.actionRepo.GetLikedCommentIDs(ctx, viewerKey, commentIDs)
		if err == nil {
			for _, id := range likedIDs {
				isLikedMap[id] = true
			}
		}
	}

	res := make([]*dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		count, _ := s.GetCommentLikeCount(ctx, c.ID)
		res = append(res, s.convertToCommentDTO(c, count, isLikedMap[c.ID]))
	}
	return res, nil
}

func (s *postActionServiceImpl) ToggleCommentLike(ctx context.Context, viewerKey string, commentID uint64) (*dto.LikeResultDTO, error) {
	comment, err := s.actionRepo.GetCommentByID(ctx, commentID)
	if err != nil || comment == nil {
		return nil, ErrCommentNotFound
	}

	liked, err := s.actionRepo.CheckCommentLikeExists(ctx, viewerKey, commentID)
	if err != nil {
		return nil, err
	}

	if liked {
		if err = s.actionRepo.DeleteCommentLike(ctx, viewerKey, commentID); err != nil {
			return nil, err
		}
	} else {
		err = s.actionRepo.CreateCommentLike(ctx, &model.CommentLike{
			ViewerKey: viewerKey,
			CommentID: commentID,
			CreatedAt: time.Now(),
		})
		if err != nil && !isDuplicateError(err) {
			return nil, err
		}
	}

	idStr := strconv.FormatUint(commentID, 10)
	_ = s.cache.Delete(ctx, consts.CommentLikeKey+idStr)
	count, err := s.GetCommentLikeCount(ctx, commentID)
	if err != nil {
		return nil, err
	}
	_ = s.cache.MarkDirty(ctx, consts.CommentDirtyKey, idStr)

	return &dto.LikeResultDTO{Liked: !liked, LikeCount: count}, nil
}

func (s *postActionServiceImpl) GetPostLikeCount(ctx context.Context, postID uint64) (int64, error) {
	return s.cachedCount(ctx, consts.PostLikeKey, postID, func() (int64, error) {
		return s.actionRepo.GetLikeCountByPostID(ctx, postID)
	})
}

func (s *postActionServiceImpl) GetPostShareCount(ctx context.Context, postID uint64) (int64, error) {
	return s.cachedCount(ctx, consts.PostShareKey, postID, func() (int64, error) {
		return s.actionRepo.GetShareCountByPostID(ctx, postID)
	})
}

func (s *postActionServiceImpl) GetPostCommentCount(ctx context.Context, postID uint64) (int64, error) {
	return s.cachedCount(ctx, consts.PostCommentKey, postID, func() (int64, error) {
		return s.actionRepo.GetCommentCountByPostID(ctx, postID)
	})
}

// GetPostViewCount membaca counter Redis; saat miss jatuh ke kolom
// views_count yang terakhir disinkronkan job.
func (s *postActionServiceImpl) GetPostViewCount(ctx context.Context, postID uint64) (int64, error) {
	return s.cachedCount(ctx, consts.PostViewKey, postID, func() (int64, error) {
		post, err := s.postRepo.GetPost(ctx, postID)
		if err != nil {
			return 0, err
		}
		return int64(post.ViewsCount), nil
	})
}

func (s *postActionServiceImpl) GetCommentLikeCount(ctx context.Context, commentID uint64) (int64, error) {
	return s.cachedCount(ctx, consts.CommentLikeKey, commentID, func() (int64, error) {
		return s.actionRepo.GetCommentLikeCount(ctx, commentID)
	})
}

// cachedCount adalah pola cache-aside untuk semua counter.
func (s *postActionServiceImpl) cachedCount(ctx context.Context, prefix string, id uint64, loader func() (int64, error)) (int64, error) {
	key := prefix + strconv.FormatUint(id, 10)
	count, found, err := s.cache.GetInt64(ctx, key)
	if err == nil && found {
		return count, nil
	}
	realCount, err := loader()
	if err != nil {
		return 0, err
	}
	_ = s.cache.Set(ctx, key, realCount, cacheExpiration)
	return realCount, nil
}

// refreshLikeCount membuang cache lama lalu membaca ulang dari database
// sehingga hasilnya pasti memuat perubahan barusan.
func (s *postActionServiceImpl) refreshLikeCount(ctx context.Context, postID uint64) (int64, error) {
	idStr := strconv.FormatUint(postID, 10)
	_ = s.cache.Delete(ctx, consts.PostLikeKey+idStr)
	return s.GetPostLikeCount(ctx, postID)
}

func (s *postActionServiceImpl) checkPostExists(ctx context.Context, postID uint64) error {
	posts, err := s.postRepo.GetPostByIds(ctx, []uint64{postID})
	if err != nil || len(posts) == 0 {
		return ErrPostNotFound
	}
	return nil
}

// markDirtyAndBroadcast menandai post untuk job sinkronisasi dan
// mendorong statistik terbaru ke kanal websocket.
func (s *postActionServiceImpl) markDirtyAndBroadcast(ctx context.Context, postID uint64) {
	idStr := strconv.FormatUint(postID, 10)
	_ = s.cache.MarkDirty(ctx, consts.PostDirtyKey, idStr)

	likes, _ := s.GetPostLikeCount(ctx, postID)
	shares, _ := s.GetPostShareCount(ctx, postID)
	comments, _ := s.GetPostCommentCount(ctx, postID)

	stats := dto.PostStatsDTO{
		PostID:       postID,
		LikeCount:    likes,
		ShareCount:   shares,
		CommentCount: comments,
	}
	payload, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.cache.Publish(ctx, consts.PostStatsChannel, payload); err != nil {
		log.WarnContext(ctx, "publish post stats failed", "postID", postID, "err", err)
	}
}

func (s *postActionServiceImpl) convertToCommentDTO(comment *model.Comment, likeCount int64, isLiked bool) *dto.CommentDTO {
	item := &dto.CommentDTO{}
	_ = copier.Copy(item, comment)
	item.LikeCount = likeCount
	item.IsLiked = isLiked
	item.CreatedAt = comment.CreatedAt.Format("2006-01-02 15:04:05")
	item.Images = ConvertImageDTOs(comment.Images)
	return item
}

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
