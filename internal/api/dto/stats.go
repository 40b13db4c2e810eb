package dto

// DashboardStatsDTO adalah ringkasan angka untuk dashboard admin.
type DashboardStatsDTO struct {
	TotalPosts    int64 `json:"total_posts"`
	TotalArticles int64 `json:"total_articles"`
	TotalEvents   int64 `json:"total_events"`
	TotalVideos   int64 `json:"total_videos"`
	TotalComments int64 `json:"total_comments"`
	TotalLikes    int64 `json:"total_likes"`
	TotalUsers    int64 `json:"total_users"`
	TotalViews    int64 `json:"total_views"`
}

type PopularPostDTO struct {
	ID           uint64 `json:"id"`
	Author       string `json:"author"`
	Excerpt      string `json:"excerpt"`
	LikeCount    int64  `json:"like_count"`
	CommentCount int64  `json:"comment_count"`
}
