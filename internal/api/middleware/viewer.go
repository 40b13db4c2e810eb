package middleware

import (
	"panganjawara/internal/pkg/viewer"

	"github.com/gin-gonic/gin"
)

// ViewerMiddleware memastikan setiap request publik membawa kunci
// viewer: kunci yang sudah ada dipakai ulang, request tanpa kunci
// mendapat kunci baru lewat cookie. Kunci yang sama selalu menghasilkan
// identitas yang sama, jadi like dan komentar tetap menempel pada
// browser yang membuatnya.
func ViewerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := viewer.GetOrCreate(c.Writer, c.Request)
		c.Set("viewer_key", key)
		c.Next()
	}
}
