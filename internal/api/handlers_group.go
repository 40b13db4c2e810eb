package api

import "panganjawara/internal/api/handler"

// HandlersGroup membungkus semua handler yang sudah terinisialisasi.
type HandlersGroup struct {
	PostHandler       *handler.PostHandler
	PostActionHandler *handler.PostActionHandler
	MediaHandler      *handler.MediaHandler
	ArticleHandler    *handler.ArticleHandler
	EventHandler      *handler.EventHandler
	VideoHandler      *handler.VideoHandler
	UserHandler       *handler.UserHandler
	StatsHandler      *handler.StatsHandler
	LookupHandler     *handler.LookupHandler
	PriceHandler      *handler.PriceHandler
	SearchHandler     *handler.SearchHandler
	WsHandler         *handler.WsHandler
}
