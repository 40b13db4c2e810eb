package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"panganjawara/internal/pkg/imagex"
	"panganjawara/internal/pkg/response"
	"panganjawara/internal/service"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaService service.MediaService
}

func NewMediaHandler(mediaService service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// Upload menerima beberapa berkas sekaligus beserta id sementara dari
// klien, dan mengembalikan peta id sementara ke id server dalam satu
// respons atomik.
func (s *MediaHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	files := form.File["files"]
	clientIDs := form.Value["client_ids"]
	if len(files) == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	result, err := s.mediaService.Upload(c.Request.Context(), clientIDs, files)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// View menyajikan rendition gambar sesuai keadaan penampil. Tanpa
// parameter, gambar dikirim apa adanya.
func (s *MediaHandler) View(c *gin.Context) {
	imageID, err := strconv.ParseUint(c.Param("image_id"), 10, 64)
	if err != nil || imageID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	t := imagex.Reset()
	if raw := c.Query("zoom"); raw != "" {
		zoom, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.Error(c, service.ErrParamInvalid)
			return
		}
		t.Zoom = zoom
	}
	if raw := c.Query("rotate"); raw != "" {
		rotation, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, service.ErrParamInvalid)
			return
		}
		t.Rotation = rotation
	}

	data, mimeType, err := s.mediaService.RenderView(c.Request.Context(), imageID, t)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, mimeType, data)
}

func (s *MediaHandler) Download(c *gin.Context) {
	imageID, err := strconv.ParseUint(c.Param("image_id"), 10, 64)
	if err != nil || imageID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	reader, img, err := s.mediaService.Download(c.Request.Context(), imageID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer func() { _ = reader.Close() }()

	name := img.OriginalName
	if name == "" {
		name = img.FileKey
	}

	c.DataFromReader(http.StatusOK, img.Size, img.MimeType, reader, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", name),
	})
}

func (s *MediaHandler) DeleteImage(c *gin.Context) {
	imageID, err := strconv.ParseUint(c.Param("image_id"), 10, 64)
	if err != nil || imageID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.mediaService.DeleteImage(c.Request.Context(), imageID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
