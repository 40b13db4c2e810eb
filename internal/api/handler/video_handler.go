package handler

import (
	"strconv"

	"panganjawara/internal/api/dto"
	"panganjawara/internal/pkg/response"
	"panganjawara/internal/service"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoService service.VideoService
}

func NewVideoHandler(videoService service.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

func (s *VideoHandler) ListVideos(c *gin.Context) {
	page, pageSize, ok := parsePage(c, 12)
	if !ok {
		return
	}

	videos, total, err := s.videoService.ListVideos(c.Request.Context(), c.Query("category"), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if totalPages == 0 {
		totalPages = 1
	}
	response.Success(c, &dto.VideoListDTO{
		Videos:      videos,
		CurrentPage: page,
		TotalPages:  totalPages,
		Total:       total,
	})
}

func (s *VideoHandler) GetVideo(c *gin.Context) {
	videoID, err := strconv.ParseUint(c.Param("video_id"), 10, 64)
	if err != nil || videoID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	video, err := s.videoService.GetVideo(c.Request.Context(), videoID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, video)
}

func (s *VideoHandler) CreateVideo(c *gin.Context) {
	var req dto.CreateVideoDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	video, err := s.videoService.CreateVideo(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, video)
}

func (s *VideoHandler) UpdateVideo(c *gin.Context) {
	videoID, err := strconv.ParseUint(c.Param("video_id"), 10, 64)
	if err != nil || videoID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.UpdateVideoDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	video, err := s.videoService.UpdateVideo(c.Request.Context(), videoID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, video)
}

func (s *VideoHandler) DeleteVideo(c *gin.Context) {
	videoID, err := strconv.ParseUint(c.Param("video_id"), 10, 64)
	if err != nil || videoID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.videoService.DeleteVideo(c.Request.Context(), videoID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
