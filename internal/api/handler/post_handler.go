package handler

import (
	"strconv"

	"panganjawara/internal/api/dto"
	"panganjawara/internal/pkg/consts"
	"panganjawara/internal/pkg/response"
	"panganjawara/internal/service"

	"github.com/gin-gonic/gin"
)

const defaultFeedPageSize = 10

type PostHandler struct {
	postService service.PostService
}

func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// ListFeed mengembalikan satu halaman feed komunitas dalam amplop
// paginasi. Halaman di luar jangkauan ditolak, bukan dikoreksi diam-diam.
func (s *PostHandler) ListFeed(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultFeedPageSize)))
	if err != nil || pageSize > 50 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	filter := c.DefaultQuery("filter", consts.FeedFilterAll)
	switch filter {
	case consts.FeedFilterAll, consts.FeedFilterRecent, consts.FeedFilterPopular, consts.FeedFilterTrending:
	default:
		response.Error(c, service.ErrParamInvalid)
		return
	}

	viewerKey := c.GetString("viewer_key")

	list, err := s.postService.ListFeed(c.Request.Context(), viewerKey, page, pageSize, filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	viewerKey := c.GetString("viewer_key")

	post, err := s.postService.GetPost(c.Request.Context(), viewerKey, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	post, err := s.postService.CreatePost(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.postService.DeletePost(c.Request.Context(), postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
