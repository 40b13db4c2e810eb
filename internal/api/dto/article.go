package dto

type ArticleDTO struct {
	ID          uint64   `json:"id"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	ContentHTML string   `json:"content_html"`
	Author      string   `json:"author"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Status      string   `json:"status"`
	Featured    bool     `json:"featured"`
	ViewCount   int64    `json:"view_count"`
	PublishedAt string   `json:"published_at"`
	CreatedAt   string   `json:"created_at"`

	Images []*ImageDTO `json:"images"`
}

type ArticleListDTO struct {
	Articles    []*ArticleDTO `json:"articles"`
	CurrentPage int           `json:"current_page"`
	TotalPages  int           `json:"total_pages"`
	Total       int64         `json:"total"`
	Summary     string        `json:"summary"`
}

type CreateArticleDTO struct {
	Title    string   `json:"title" binding:"required" validate:"min=1,max=255"`
	Excerpt  string   `json:"excerpt" validate:"max=500"`
	Content  string   `json:"content" binding:"required"`
	Author   string   `json:"author" binding:"required" validate:"min=1,max=100"`
	Category string   `json:"category" validate:"max=50"`
	Tags     []string `json:"tags" validate:"max=10"`
	Status   string   `json:"status" validate:"omitempty,oneof=draft published archived"`
	Featured bool     `json:"featured"`
	ImageIDs []uint64 `json:"image_ids"`
}

type UpdateArticleDTO struct {
	Title    string   `json:"title" validate:"max=255"`
	Excerpt  string   `json:"excerpt" validate:"max=500"`
	Content  string   `json:"content"`
	Author   string   `json:"author" validate:"max=100"`
	Category string   `json:"category" validate:"max=50"`
	Tags     []string `json:"tags" validate:"max=10"`
	Status   string   `json:"status" validate:"omitempty,oneof=draft published archived"`
	Featured *bool    `json:"featured"`
	ImageIDs []uint64 `json:"image_ids"`
}
