package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"panganjawara/internal/pkg/viewer"

	"github.com/gin-gonic/gin"
)

func TestViewerMiddlewareInjectsCarriedKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ViewerMiddleware())

	var got string
	r.GET("/", func(c *gin.Context) {
		got = c.GetString("viewer_key")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(viewer.HeaderName, "carriedkey123456")
	r.ServeHTTP(w, req)

	if got != "carriedkey123456" {
		t.Fatalf("expected carried key in context, got %q", got)
	}
}

func TestViewerMiddlewareIssuesCookieForNewVisitor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ViewerMiddleware())

	var got string
	r.GET("/", func(c *gin.Context) {
		got = c.GetString("viewer_key")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if len(got) != viewer.KeyLength {
		t.Fatalf("expected generated key of length %d, got %q", viewer.KeyLength, got)
	}

	for _, c := range w.Result().Cookies() {
		if c.Name == viewer.CookieName && c.Value == got {
			return
		}
	}
	t.Fatal("expected viewer cookie carrying the generated key")
}
