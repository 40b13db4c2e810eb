package consts

const (
	PostLikeKey        = "post:like:"
	PostShareKey       = "post:share:"
	PostCommentKey     = "post:comment:"
	PostViewKey        = "post:view:"
	PostDirtyKey       = "post:dirty"
	CommentLikeKey     = "comment:like:"
	CommentDirtyKey    = "comment:dirty"
	ArticleViewKey     = "article:view:"
	ArticleDirtyKey    = "article:dirty"
	WeatherCacheKey    = "lookup:weather:"
	WilayahCacheKey    = "lookup:wilayah:"
	DashboardStatsKey  = "stats:dashboard"
	PopularContentKey  = "stats:popular"

	// PostStatsChannel adalah kanal pub/sub untuk push statistik real-time.
	PostStatsChannel = "post:stats:channel"
)

const (
	PriceScrapeLock = "price:scrape:lock"
)
