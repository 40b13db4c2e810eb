package external

import (
	"context"
	"fmt"
	"time"

	"panganjawara/internal/api/config"

	"github.com/go-resty/resty/v2"
)

// Wilayah adalah satu entri wilayah administratif hasil pencarian.
type Wilayah struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type WilayahClient struct {
	client *resty.Client
}

func NewWilayahClient(cfg config.LookupConfig) *WilayahClient {
	client := resty.New().
		SetBaseURL(cfg.WilayahBaseURL).
		SetTimeout(8 * time.Second).
		SetRetryCount(2)

	return &WilayahClient{client: client}
}

type wilayahAPIResponse struct {
	Data []Wilayah `json:"data"`
}

// Search mencari wilayah administratif berdasarkan nama.
func (s *WilayahClient) Search(ctx context.Context, query string) ([]Wilayah, error) {
	var body wilayahAPIResponse

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("name", query).
		SetResult(&body).
		Get("/regions/search")
	if err != nil {
		return nil, fmt.Errorf("wilayah request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("wilayah service returned %d", resp.StatusCode())
	}

	return body.Data, nil
}
