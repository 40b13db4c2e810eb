package handler

import (
	"panganjawara/internal/pkg/response"
	"panganjawara/internal/service"

	"github.com/gin-gonic/gin"
)

type LookupHandler struct {
	lookupService service.LookupService
}

func NewLookupHandler(lookupService service.LookupService) *LookupHandler {
	return &LookupHandler{lookupService: lookupService}
}

func (s *LookupHandler) GetWeather(c *gin.Context) {
	lat := c.Query("lat")
	lon := c.Query("lon")

	info, err := s.lookupService.GetWeather(c.Request.Context(), lat, lon)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, info)
}

func (s *LookupHandler) SearchWilayah(c *gin.Context) {
	regions, err := s.lookupService.SearchWilayah(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, regions)
}
