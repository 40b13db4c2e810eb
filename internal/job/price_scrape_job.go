package job

import (
	"context"
	log "log/slog"
	"time"

	"panganjawara/internal/pkg/consts"
	"panganjawara/internal/pkg/logger"
	"panganjawara/internal/pkg/redis"
	"panganjawara/internal/service"

	"github.com/google/uuid"
)

// PriceScrapeJob menarik harga komoditas harian. Lock redis mencegah
// dua instance portal melakukan scraping bersamaan.
type PriceScrapeJob struct {
	priceSvc service.PriceService
}

func NewPriceScrapeJob(priceSvc service.PriceService) *PriceScrapeJob {
	return &PriceScrapeJob{priceSvc: priceSvc}
}

func (s *PriceScrapeJob) Run() {
	traceID := "job-price-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	locked, err := redis.TryLock(ctx, consts.PriceScrapeLock, traceID, 10*time.Minute)
	if err != nil {
		log.ErrorContext(ctx, "acquire price scrape lock error", "err", err)
		return
	}
	if !locked {
		log.InfoContext(ctx, "price scrape already running elsewhere, skip")
		return
	}
	defer redis.UnLock(ctx, consts.PriceScrapeLock, traceID)

	count, err := s.priceSvc.ScrapeAndStore(ctx)
	if err != nil {
		log.ErrorContext(ctx, "price scrape error", "err", err)
		return
	}

	log.InfoContext(ctx, "price scrape success", "stored", count)
}
