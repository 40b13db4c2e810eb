package service

import (
	"context"
	log "log/slog"
	"strings"
	"time"

	"panganjawara/internal/pkg/consts"
	"panganjawara/internal/pkg/external"
	"panganjawara/internal/pkg/redis"

	"github.com/goccy/go-json"
)

const (
	weatherCacheExpiration = 30 * time.Minute
	wilayahCacheExpiration = 24 * time.Hour
)

type LookupService interface {
	GetWeather(ctx context.Context, lat, lon string) (*external.WeatherInfo, error)
	SearchWilayah(ctx context.Context, query string) ([]external.Wilayah, error)
}

type lookupServiceImpl struct {
	weather *external.WeatherClient
	wilayah *external.WilayahClient
}

func NewLookupService(weather *external.WeatherClient, wilayah *external.WilayahClient) LookupService {
	return &lookupServiceImpl{
		weather: weather,
		wilayah: wilayah,
	}
}

// GetWeather menyimpan hasil per koordinat karena API cuaca dibatasi kuota.
func (s *lookupServiceImpl) GetWeather(ctx context.Context, lat, lon string) (*external.WeatherInfo, error) {
	if lat == "" || lon == "" {
		return nil, ErrParamInvalid
	}

	key := consts.WeatherCacheKey + lat + ":" + lon
	cached, err := redis.GetValue(ctx, key)
	if err == nil && cached != "" {
		var info external.WeatherInfo
		if err = json.Unmarshal([]byte(cached), &info); err == nil {
			return &info, nil
		}
	}

	info, err := s.weather.Current(ctx, lat, lon)
	if err != nil {
		log.WarnContext(ctx, "weather lookup failed", "lat", lat, "lon", lon, "err", err)
		return nil, ErrLookupUnavailable
	}

	if payload, err := json.Marshal(info); err == nil {
		_ = redis.SetWithExpiration(ctx, key, payload, weatherCacheExpiration)
	}
	return info, nil
}

func (s *lookupServiceImpl) SearchWilayah(ctx context.Context, query string) ([]external.Wilayah, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrParamInvalid
	}

	key := consts.WilayahCacheKey + strings.ToLower(query)
	cached, err := redis.GetValue(ctx, key)
	if err == nil && cached != "" {
		var regions []external.Wilayah
		if err = json.Unmarshal([]byte(cached), &regions); err == nil {
			return regions, nil
		}
	}

	regions, err := s.wilayah.Search(ctx, query)
	if err != nil {
		log.WarnContext(ctx, "wilayah lookup failed", "query", query, "err", err)
		return nil, ErrLookupUnavailable
	}
	if regions == nil {
		regions = []external.Wilayah{}
	}

	if payload, err := json.Marshal(regions); err == nil {
		_ = redis.SetWithExpiration(ctx, key, payload, wilayahCacheExpiration)
	}
	return regions, nil
}
