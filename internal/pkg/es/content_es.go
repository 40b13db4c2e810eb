package es

import "time"

// Jenis dokumen pada indeks konten gabungan.
const (
	DocTypePost    = "post"
	DocTypeArticle = "article"
)

// ContentES adalah dokumen yang diindeks untuk pencarian portal;
// postingan komunitas dan artikel edukasi berbagi satu indeks.
type ContentES struct {
	ID           uint64    `json:"id"`
	DocType      string    `json:"doc_type"`
	Title        string    `json:"title"`
	PlainContent string    `json:"plain_content"`
	Author       string    `json:"author"`
	Tags         []string  `json:"tags"`
	Status       string    `json:"status"`
	LikeCount    int       `json:"like_count"`
	CommentCount int       `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
}
