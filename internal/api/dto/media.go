package dto

type ImageDTO struct {
	ID           uint64 `json:"id"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url"`
	MimeType     string `json:"mime_type"`
	OriginalName string `json:"original_name"`
	SortOrder    int    `json:"sort_order"`
}

// UploadResultDTO memetakan id sementara dari klien ke id server,
// sehingga klien bisa menukar token {{image:client_id}} dalam draft
// menjadi id final tanpa menebak urutan.
type UploadResultDTO struct {
	IDMap  map[string]uint64 `json:"id_map"`
	Images []*ImageDTO       `json:"images"`
}
