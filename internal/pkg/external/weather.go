package external

import (
	"context"
	"fmt"
	"time"

	"panganjawara/internal/api/config"

	"github.com/go-resty/resty/v2"
)

// WeatherInfo adalah ringkasan cuaca yang ditampilkan di dashboard portal.
type WeatherInfo struct {
	Location    string  `json:"location"`
	Temperature float64 `json:"temperature"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Condition   string  `json:"condition"`
	Icon        string  `json:"icon"`
}

type WeatherClient struct {
	client *resty.Client
	apiKey string
}

func NewWeatherClient(cfg config.LookupConfig) *WeatherClient {
	client := resty.New().
		SetBaseURL(cfg.WeatherBaseURL).
		SetTimeout(8 * time.Second).
		SetRetryCount(2)

	return &WeatherClient{client: client, apiKey: cfg.WeatherApiKey}
}

type weatherAPIResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Main string `json:"main"`
		Icon string `json:"icon"`
	} `json:"weather"`
}

// Current mengambil kondisi cuaca terkini pada koordinat yang diberikan.
func (s *WeatherClient) Current(ctx context.Context, lat, lon string) (*WeatherInfo, error) {
	var body weatherAPIResponse

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"lat":   lat,
			"lon":   lon,
			"units": "metric",
			"appid": s.apiKey,
		}).
		SetResult(&body).
		Get("/weather")
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("weather service returned %d", resp.StatusCode())
	}

	info := &WeatherInfo{
		Location:    body.Name,
		Temperature: body.Main.Temp,
		Humidity:    body.Main.Humidity,
		WindSpeed:   body.Wind.Speed,
	}
	if len(body.Weather) > 0 {
		info.Condition = body.Weather[0].Main
		info.Icon = body.Weather[0].Icon
	}
	return info, nil
}
