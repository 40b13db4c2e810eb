package handler

import (
	"strconv"

	"panganjawara/internal/api/dto"
	"panganjawara/internal/pkg/response"
	"panganjawara/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

type PostActionHandler struct {
	actionService service.PostActionService
}

func NewPostActionHandler(actionService service.PostActionService) *PostActionHandler {
	return &PostActionHandler{actionService: actionService}
}

// LikePost men-toggle like pengunjung; respons membawa keadaan akhir
// yang wajib dipakai klien apa adanya.
func (s *PostActionHandler) LikePost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	viewerKey := c.GetString("viewer_key")
	if viewerKey == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	result, err := s.actionService.ToggleLike(c.Request.Context(), viewerKey, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *PostActionHandler) SharePost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	viewerKey := c.GetString("viewer_key")
	if viewerKey == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	result, err := s.actionService.SharePost(c.Request.Context(), viewerKey, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *PostActionHandler) CreateComment(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	viewerKey := c.GetString("viewer_key")

	var req dto.CreateCommentDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	comment, err := s.actionService.CreateComment(c.Request.Context(), viewerKey, postID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

func (s *PostActionHandler) GetComments(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || pageSize > 100 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	viewerKey := c.GetString("viewer_key")

	comments, err := s.actionService.GetCommentsByPostID(c.Request.Context(), viewerKey, postID, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	total, err := s.actionService.GetPostCommentCount(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if totalPages == 0 {
		totalPages = 1
	}

	response.Success(c, &dto.CommentListDTO{
		Comments:    comments,
		CurrentPage: page,
		TotalPages:  totalPages,
		Total:       total,
	})
}

func (s *PostActionHandler) DeleteComment(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil || commentID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.actionService.DeleteComment(c.Request.Context(), commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostActionHandler) LikeComment(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil || commentID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	viewerKey := c.GetString("viewer_key")
	if viewerKey == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	result, err := s.actionService.ToggleCommentLike(c.Request.Context(), viewerKey, commentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetPostStats mengambil semua penghitung satu postingan secara paralel.
func (s *PostActionHandler) GetPostStats(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	stats := &dto.PostStatsDTO{PostID: postID}
	g, ctx := errgroup.WithContext(c.Request.Context())

	g.Go(func() error {
		count, err := s.actionService.GetPostLikeCount(ctx, postID)
		if err == nil {
			stats.LikeCount = count
		}
		return err
	})
	g.Go(func() error {
		count, err := s.actionService.GetPostShareCount(ctx, postID)
		if err == nil {
			stats.ShareCount = count
		}
		return err
	})
	g.Go(func() error {
		count, err := s.actionService.GetPostCommentCount(ctx, postID)
		if err == nil {
			stats.CommentCount = count
		}
		return err
	})

	if err = g.Wait(); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}
