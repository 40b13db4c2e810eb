package middleware

import (
	"bytes"
	"io"
	log "log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"panganjawara/internal/pkg/logger"
	"panganjawara/internal/pkg/mongo"

	"github.com/gin-gonic/gin"
)

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r *responseBodyWriter) Write(b []byte) (int, error) {
	if r.body.Len() < 16384 {
		r.body.Write(b)
	}
	return r.ResponseWriter.Write(b)
}

func (r *responseBodyWriter) Flush() {
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// AccessLogMiddleware mencatat request dan response ke log terstruktur.
func AccessLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var reqBody []byte
		if c.Request.Body != nil {
			reqBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(reqBody))
		}

		rawQuery := c.Request.URL.RawQuery
		decodedQuery, err := url.QueryUnescape(rawQuery)
		if err != nil {
			decodedQuery = rawQuery
		}

		log.InfoContext(ctx, "Recv Request",
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
			log.String("query", decodedQuery),
			log.String("req_body", string(reqBody)),
		)

		w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w
		startTime := time.Now()

		c.Next()

		log.InfoContext(ctx, "Send Response",
			log.Int("status", c.Writer.Status()),
			log.Duration("latency", time.Since(startTime)),
			log.String("res_body", w.body.String()),
		)
	}
}

var auditActions = map[string]string{
	http.MethodPost:   "create",
	http.MethodPut:    "update",
	http.MethodDelete: "delete",
}

// AdminAuditMiddleware merekam setiap mutasi admin ke jejak audit.
// Entity diambil dari segmen path setelah /api/admin/, id dari segmen
// numerik berikutnya bila ada.
func AdminAuditMiddleware(auditRepo mongo.AuditRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		action, ok := auditActions[c.Request.Method]
		if !ok || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		entity, entityID := parseAuditTarget(c.Request.URL.Path)
		if entity == "" {
			return
		}

		entry := &mongo.AuditEntry{
			Actor:    c.GetString("username"),
			Action:   action,
			Entity:   entity,
			EntityID: entityID,
			TraceID:  c.GetString(logger.TraceIDKey),
			At:       time.Now(),
		}

		if err := auditRepo.Insert(c.Request.Context(), entry); err != nil {
			log.WarnContext(c.Request.Context(), "audit insert failed",
				"entity", entity, "action", action, "err", err)
		}
	}
}

func parseAuditTarget(path string) (string, uint64) {
	const prefix = "/api/admin/"
	if !strings.HasPrefix(path, prefix) {
		return "", 0
	}

	parts := strings.Split(strings.TrimPrefix(path, prefix), "/")
	if len(parts) == 0 || parts[0] == "" {
		return "", 0
	}

	entity := strings.TrimSuffix(parts[0], "s")
	var entityID uint64
	if len(parts) > 1 {
		if id, err := strconv.ParseUint(parts[1], 10, 64); err == nil {
			entityID = id
		}
	}
	return entity, entityID
}
