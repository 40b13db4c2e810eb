package handler

import (
	"strconv"

	"panganjawara/internal/pkg/response"
	"panganjawara/internal/service"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchService service.SearchService
}

func NewSearchHandler(searchService service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

func (s *SearchHandler) Search(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if err != nil || pageSize > 50 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	hits, err := s.searchService.Search(c.Request.Context(), c.Query("q"), c.Query("type"), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, hits)
}
