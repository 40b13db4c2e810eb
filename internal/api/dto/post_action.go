package dto

// LikeResultDTO adalah keadaan akhir setelah toggle; klien wajib
// memakai nilai ini, bukan hasil hitung lokalnya sendiri.
type LikeResultDTO struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

type ShareResultDTO struct {
	ShareCount int64  `json:"share_count"`
	ShareURL   string `json:"share_url"`
}

type CreateCommentDTO struct {
	Author     string   `json:"author" binding:"required" validate:"min=1,max=100"`
	AuthorRole string   `json:"author_role" validate:"max=50"`
	Content    string   `json:"content" binding:"required" validate:"min=1,max=2000"`
	ParentID   uint64   `json:"parent_id"`
	ImageIDs   []uint64 `json:"image_ids"`
}

type CommentDTO struct {
	ID         uint64      `json:"id"`
	PostID     uint64      `json:"post_id"`
	ParentID   uint64      `json:"parent_id"`
	Author     string      `json:"author"`
	AuthorRole string      `json:"author_role"`
	Content    string      `json:"content"`
	LikeCount  int64       `json:"like_count"`
	IsLiked    bool        `json:"is_liked"`
	CreatedAt  string      `json:"created_at"`
	Images     []*ImageDTO `json:"images"`
}

// PostStatsDTO dipakai untuk push statistik lewat websocket.
type PostStatsDTO struct {
	PostID       uint64 `json:"post_id"`
	LikeCount    int64  `json:"like_count"`
	ShareCount   int64  `json:"share_count"`
	CommentCount int64  `json:"comment_count"`
}

type CommentListDTO struct {
	Comments    []*CommentDTO `json:"comments"`
	CurrentPage int           `json:"current_page"`
	TotalPages  int           `json:"total_pages"`
	Total       int64         `json:"total"`
}
