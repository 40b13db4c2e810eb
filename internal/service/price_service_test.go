package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"panganjawara/internal/api/config"
	"panganjawara/internal/model"
)

type mockPriceRepo struct {
	created []*model.CommodityPrice
	latest  []*model.CommodityPrice
}

func (m *mockPriceRepo) CreatePrices(ctx context.Context, prices []*model.CommodityPrice) error {
	m.created = append(m.created, prices...)
	return nil
}

func (m *mockPriceRepo) ListLatest(ctx context.Context, region string) ([]*model.CommodityPrice, error) {
	return m.latest, nil
}

func (m *mockPriceRepo) ListHistory(ctx context.Context, commodity string, since time.Time) ([]*model.CommodityPrice, error) {
	return nil, nil
}

func (m *mockPriceRepo) GetLatestRecordedAt(ctx context.Context) (time.Time, error) {
	return time.Time{}, nil
}

func TestParseRupiah(t *testing.T) {
	tests := []struct {
		in     string
		want   int64
		wantOk bool
	}{
		{"Rp 12.500", 12500, true},
		{"12500", 12500, true},
		{"Rp14.000", 14000, true},
		{"1,250", 1250, true},
		{"", 0, false},
		{"gratis", 0, false},
		{"-100", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseRupiah(tt.in)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("parseRupiah(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.wantOk)
		}
	}
}

const priceTableHTML = `
<html><body>
<table>
  <tbody>
    <tr><td>Beras Medium</td><td>Rp 13.500</td><td>kg</td><td>Jawa Barat</td></tr>
    <tr><td>Cabai Merah</td><td>45.000</td><td>kg</td></tr>
    <tr><td></td><td>Rp 1.000</td><td>kg</td></tr>
    <tr><td>Bawang Merah</td><td>mahal</td><td>kg</td></tr>
  </tbody>
</table>
</body></html>`

func TestScrapeAndStoreParsesTableRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(priceTableHTML))
	}))
	defer srv.Close()

	repo := &mockPriceRepo{}
	svc := NewPriceService(repo, config.PriceConfig{SourceURL: srv.URL})

	count, err := svc.ScrapeAndStore(context.Background())
	if err != nil {
		t.Fatalf("ScrapeAndStore returned error: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 stored rows, got %d", count)
	}

	if repo.created[0].Commodity != "Beras Medium" || repo.created[0].Price != 13500 {
		t.Fatalf("unexpected first row: %+v", repo.created[0])
	}
	if repo.created[0].Region != "Jawa Barat" {
		t.Fatalf("expected region from fourth cell, got %q", repo.created[0].Region)
	}
	if repo.created[1].Commodity != "Cabai Merah" || repo.created[1].Price != 45000 {
		t.Fatalf("unexpected second row: %+v", repo.created[1])
	}
	if repo.created[1].Region != "" {
		t.Fatalf("row without region cell must stay empty, got %q", repo.created[1].Region)
	}
}

func TestScrapeAndStoreEmptyPageIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body><p>tidak ada tabel</p></body></html>"))
	}))
	defer srv.Close()

	repo := &mockPriceRepo{}
	svc := NewPriceService(repo, config.PriceConfig{SourceURL: srv.URL})

	count, err := svc.ScrapeAndStore(context.Background())
	if err != nil {
		t.Fatalf("empty page should not error: %v", err)
	}
	if count != 0 || len(repo.created) != 0 {
		t.Fatalf("expected nothing stored, got count=%d stored=%d", count, len(repo.created))
	}
}

func TestGetLatestPricesUsesNewestRecordedAt(t *testing.T) {
	recorded := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	repo := &mockPriceRepo{
		latest: []*model.CommodityPrice{
			{ID: 1, Commodity: "Beras Medium", Price: 13500, Unit: "kg", RecordedAt: recorded},
		},
	}
	svc := NewPriceService(repo, config.PriceConfig{})

	list, err := svc.GetLatestPrices(context.Background(), "")
	if err != nil {
		t.Fatalf("GetLatestPrices returned error: %v", err)
	}
	if len(list.Prices) != 1 || list.UpdatedAt != "2026-08-30" {
		t.Fatalf("unexpected result: %+v", list)
	}
}

func TestGetPriceHistoryRequiresCommodity(t *testing.T) {
	svc := NewPriceService(&mockPriceRepo{}, config.PriceConfig{})

	if _, err := svc.GetPriceHistory(context.Background(), "  ", 30); err != ErrParamInvalid {
		t.Fatalf("expected ErrParamInvalid, got %v", err)
	}
}
