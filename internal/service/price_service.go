package service

import (
	"context"
	"fmt"
	log "log/slog"
	"strconv"
	"strings"
	"time"

	"panganjawara/internal/api/config"
	"panganjawara/internal/api/dto"
	"panganjawara/internal/model"
	"panganjawara/internal/repository"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

type PriceService interface {
	GetLatestPrices(ctx context.Context, region string) (*dto.PriceListDTO, error)
	GetPriceHistory(ctx context.Context, commodity string, days int) ([]*dto.PriceDTO, error)
	ScrapeAndStore(ctx context.Context) (int, error)
}

type priceServiceImpl struct {
	priceRepo repository.PriceRepo
	client    *resty.Client
	sourceURL string
}

func NewPriceService(priceRepo repository.PriceRepo, cfg config.PriceConfig) PriceService {
	client := resty.New().
		SetTimeout(15 * time.Second).
		SetRetryCount(2)

	return &priceServiceImpl{
		priceRepo: priceRepo,
		client:    client,
		sourceURL: cfg.SourceURL,
	}
}

func (s *priceServiceImpl) GetLatestPrices(ctx context.Context, region string) (*dto.PriceListDTO, error) {
	prices, err := s.priceRepo.ListLatest(ctx, region)
	if err != nil {
		return nil, err
	}

	result := &dto.PriceListDTO{
		Prices: make([]*dto.PriceDTO, 0, len(prices)),
	}
	for _, p := range prices {
		result.Prices = append(result.Prices, convertToPriceDTO(p))
	}
	if len(prices) > 0 {
		result.UpdatedAt = prices[0].RecordedAt.Format("2006-01-02")
	}
	return result, nil
}

func (s *priceServiceImpl) GetPriceHistory(ctx context.Context, commodity string, days int) ([]*dto.PriceDTO, error) {
	commodity = strings.TrimSpace(commodity)
	if commodity == "" {
		return nil, ErrParamInvalid
	}
	if days < 1 || days > 365 {
		days = 30
	}

	since := time.Now().AddDate(0, 0, -days)
	prices, err := s.priceRepo.ListHistory(ctx, commodity, since)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.PriceDTO, 0, len(prices))
	for _, p := range prices {
		list = append(list, convertToPriceDTO(p))
	}
	return list, nil
}

// ScrapeAndStore mengambil tabel harga dari sumber dan menyimpan satu
// batch dengan tanggal pencatatan hari ini.
func (s *priceServiceImpl) ScrapeAndStore(ctx context.Context) (int, error) {
	resp, err := s.client.R().SetContext(ctx).Get(s.sourceURL)
	if err != nil {
		return 0, fmt.Errorf("fetch price source: %w", err)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("price source returned %d", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.String()))
	if err != nil {
		return 0, fmt.Errorf("parse price page: %w", err)
	}

	recordedAt := time.Now().Truncate(24 * time.Hour)
	prices := make([]*model.CommodityPrice, 0)

	doc.Find("table tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 3 {
			return
		}

		commodity := strings.TrimSpace(cells.Eq(0).Text())
		priceText := strings.TrimSpace(cells.Eq(1).Text())
		unit := strings.TrimSpace(cells.Eq(2).Text())
		region := ""
		if cells.Length() > 3 {
			region = strings.TrimSpace(cells.Eq(3).Text())
		}

		price, ok := parseRupiah(priceText)
		if commodity == "" || !ok {
			return
		}

		prices = append(prices, &model.CommodityPrice{
			Commodity:  commodity,
			Unit:       unit,
			Price:      price,
			Region:     region,
			Source:     s.sourceURL,
			RecordedAt: recordedAt,
			CreatedAt:  time.Now(),
		})
	})

	if len(prices) == 0 {
		log.WarnContext(ctx, "price scrape found no rows", "source", s.sourceURL)
		return 0, nil
	}

	if err = s.priceRepo.CreatePrices(ctx, prices); err != nil {
		return 0, err
	}
	return len(prices), nil
}

// parseRupiah menerima format seperti "Rp 12.500" atau "12500".
func parseRupiah(text string) (int64, bool) {
	cleaned := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), "Rp"))
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, false
	}
	value, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil || value < 0 {
		return 0, false
	}
	return value, true
}

func convertToPriceDTO(p *model.CommodityPrice) *dto.PriceDTO {
	return &dto.PriceDTO{
		ID:         p.ID,
		Commodity:  p.Commodity,
		Unit:       p.Unit,
		Price:      p.Price,
		Region:     p.Region,
		Source:     p.Source,
		RecordedAt: p.RecordedAt.Format("2006-01-02"),
	}
}
