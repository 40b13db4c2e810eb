package dto

type VideoDTO struct {
	ID              uint64 `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	VideoURL        string `json:"video_url"`
	Category        string `json:"category"`
	DurationSeconds int    `json:"duration_seconds"`
	ViewCount       int64  `json:"view_count"`
	CreatedAt       string `json:"created_at"`

	Images []*ImageDTO `json:"images"`
}

type CreateVideoDTO struct {
	Title           string   `json:"title" binding:"required" validate:"min=1,max=255"`
	Description     string   `json:"description" validate:"max=1000"`
	VideoURL        string   `json:"video_url" binding:"required" validate:"url"`
	Category        string   `json:"category" validate:"max=50"`
	DurationSeconds int      `json:"duration_seconds" validate:"min=0"`
	ImageIDs        []uint64 `json:"image_ids"`
}

type UpdateVideoDTO struct {
	Title           string   `json:"title" validate:"max=255"`
	Description     string   `json:"description" validate:"max=1000"`
	VideoURL        string   `json:"video_url" validate:"omitempty,url"`
	Category        string   `json:"category" validate:"max=50"`
	DurationSeconds *int     `json:"duration_seconds" validate:"omitempty,min=0"`
	ImageIDs        []uint64 `json:"image_ids"`
}

type VideoListDTO struct {
	Videos      []*VideoDTO `json:"videos"`
	CurrentPage int         `json:"current_page"`
	TotalPages  int         `json:"total_pages"`
	Total       int64       `json:"total"`
}
