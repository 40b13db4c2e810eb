package kafka

// Jenis event interaksi yang dikirim lewat topik interaksi.
const (
	EventTypeView  = "view"
	EventTypeShare = "share"
)

// InteractionEvent adalah satu interaksi pengunjung terhadap sebuah
// postingan. Event view dihitung asinkron agar pembacaan detail tidak
// menulis ke database pada jalur request.
type InteractionEvent struct {
	Type      string `json:"type"`
	PostID    uint64 `json:"post_id"`
	ViewerKey string `json:"viewer_key"`
	At        int64  `json:"at"`
}
