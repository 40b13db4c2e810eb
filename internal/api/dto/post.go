package dto

type PostDTO struct {
	ID           uint64   `json:"id"`
	Author       string   `json:"author"`
	AuthorRole   string   `json:"author_role"`
	Content      string   `json:"content"`
	Tags         []string `json:"tags"`
	LikeCount    int64    `json:"like_count"`
	ShareCount   int64    `json:"share_count"`
	CommentCount int64    `json:"comment_count"`
	ViewCount    int64    `json:"view_count"`
	IsLiked      bool     `json:"is_liked"`
	IsTrending   bool     `json:"is_trending"`
	CreatedAt    string   `json:"created_at"`

	Images []*ImageDTO `json:"images"`
}

// PostListDTO adalah amplop paginasi feed; Summary sudah jadi kalimat
// siap tampil sehingga semua klien menampilkan teks yang sama.
type PostListDTO struct {
	Posts       []*PostDTO `json:"posts"`
	CurrentPage int        `json:"current_page"`
	TotalPages  int        `json:"total_pages"`
	TotalPosts  int64      `json:"total_posts"`
	Summary     string     `json:"summary"`
}

type CreatePostDTO struct {
	Author     string   `json:"author" binding:"required" validate:"min=1,max=100"`
	AuthorRole string   `json:"author_role" validate:"max=50"`
	Content    string   `json:"content" binding:"required" validate:"min=1,max=5000"`
	Tags       []string `json:"tags" validate:"max=5"`
	ImageIDs   []uint64 `json:"image_ids" validate:"max=4"`
}
