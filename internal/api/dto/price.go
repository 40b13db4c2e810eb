package dto

type PriceDTO struct {
	ID         uint64 `json:"id"`
	Commodity  string `json:"commodity"`
	Unit       string `json:"unit"`
	Price      int64  `json:"price"`
	Region     string `json:"region"`
	Source     string `json:"source"`
	RecordedAt string `json:"recorded_at"`
}

type PriceListDTO struct {
	Prices    []*PriceDTO `json:"prices"`
	UpdatedAt string      `json:"updated_at"`
}
