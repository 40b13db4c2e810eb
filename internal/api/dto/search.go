package dto

type SearchHitDTO struct {
	ID        uint64   `json:"id"`
	DocType   string   `json:"doc_type"`
	Title     string   `json:"title"`
	Excerpt   string   `json:"excerpt"`
	Author    string   `json:"author"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"created_at"`
}
