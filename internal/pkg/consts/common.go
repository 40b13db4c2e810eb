package consts

const MimePrefixImage = "image"

// ThumbPrefix adalah prefix object key untuk rendition thumbnail.
const ThumbPrefix = "thumbs/"

// Image attachment owners. An image is uploaded as pending and claimed
// by the entity that references it.
const (
	OwnerPending = "pending"
	OwnerPost    = "post"
	OwnerComment = "comment"
	OwnerArticle = "article"
	OwnerEvent   = "event"
	OwnerVideo   = "video"
)

const (
	ArticleStatusDraft     = "draft"
	ArticleStatusPublished = "published"
	ArticleStatusArchived  = "archived"
)

const (
	EventStatusDraft     = "draft"
	EventStatusPublished = "published"
	EventStatusCancelled = "cancelled"
	EventStatusDone      = "done"
)

// Nilai query filter yang dikenal pada feed komunitas.
const (
	FeedFilterAll      = "all"
	FeedFilterRecent   = "recent"
	FeedFilterPopular  = "popular"
	FeedFilterTrending = "trending"
)

const (
	MaxCommentImages = 4
	MaxUploadBytes   = 5 << 20
)

// Ambang trending: disukai lebih dari 5 kali atau dikomentari lebih
// dari 3 kali.
const (
	TrendingLikeThreshold    = 5
	TrendingCommentThreshold = 3
)
