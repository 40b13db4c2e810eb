package handler

import (
	"strconv"

	"panganjawara/internal/pkg/response"
	"panganjawara/internal/service"

	"github.com/gin-gonic/gin"
)

type PriceHandler struct {
	priceService service.PriceService
}

func NewPriceHandler(priceService service.PriceService) *PriceHandler {
	return &PriceHandler{priceService: priceService}
}

func (s *PriceHandler) GetLatestPrices(c *gin.Context) {
	list, err := s.priceService.GetLatestPrices(c.Request.Context(), c.Query("region"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *PriceHandler) GetPriceHistory(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	history, err := s.priceService.GetPriceHistory(c.Request.Context(), c.Query("commodity"), days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, history)
}

// RefreshPrices menjalankan scraping harga secara manual, di luar
// jadwal cron harian.
func (s *PriceHandler) RefreshPrices(c *gin.Context) {
	count, err := s.priceService.ScrapeAndStore(c.Request.Context())
	if err != nil {
		response.Error(c, service.UnExpectedError)
		return
	}
	response.Success(c, gin.H{"stored": count})
}
