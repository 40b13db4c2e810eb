package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"panganjawara/internal/api/dto"
	"panganjawara/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

type mockPostService struct {
	list    *dto.PostListDTO
	listErr error

	lastPage     int
	lastPageSize int
	lastFilter   string
}

func (m *mockPostService) ListFeed(ctx context.Context, viewerKey string, page, pageSize int, filter string) (*dto.PostListDTO, error) {
	m.lastPage = page
	m.lastPageSize = pageSize
	m.lastFilter = filter
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.list, nil
}

func (m *mockPostService) GetPost(ctx context.Context, viewerKey string, id uint64) (*dto.PostDTO, error) {
	if id != 7 {
		return nil, service.ErrPostNotFound
	}
	return &dto.PostDTO{ID: 7, Author: "Petani"}, nil
}

func (m *mockPostService) CreatePost(ctx context.Context, req *dto.CreatePostDTO) (*dto.PostDTO, error) {
	return &dto.PostDTO{ID: 1, Author: req.Author}, nil
}

func (m *mockPostService) DeletePost(ctx context.Context, id uint64) error { return nil }

func (m *mockPostService) UpdatePostCounts(ctx context.Context, id uint64, likes, shares, comments, views int64) error {
	return nil
}

func setupPostRouter(svc service.PostService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPostHandler(svc)
	r.GET("/api/posts", h.ListFeed)
	r.GET("/api/posts/:post_id", h.GetPost)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, target string) *dto.Response {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected HTTP 200 envelope, got %d", w.Code)
	}

	var body dto.Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	return &body
}

func TestListFeedPassesQueryParams(t *testing.T) {
	svc := &mockPostService{list: &dto.PostListDTO{CurrentPage: 2, TotalPages: 3}}
	r := setupPostRouter(svc)

	body := doRequest(t, r, http.MethodGet, "/api/posts?page=2&limit=5&filter=trending")

	if body.Code != 200 {
		t.Fatalf("expected business code 200, got %d (%s)", body.Code, body.Message)
	}
	if svc.lastPage != 2 || svc.lastPageSize != 5 || svc.lastFilter != "trending" {
		t.Fatalf("query params not forwarded: page=%d size=%d filter=%q",
			svc.lastPage, svc.lastPageSize, svc.lastFilter)
	}
}

func TestListFeedDefaultsToAllFilter(t *testing.T) {
	svc := &mockPostService{list: &dto.PostListDTO{CurrentPage: 1, TotalPages: 1}}
	r := setupPostRouter(svc)

	body := doRequest(t, r, http.MethodGet, "/api/posts")
	if body.Code != 200 {
		t.Fatalf("expected business code 200, got %d", body.Code)
	}
	if svc.lastFilter != "all" {
		t.Fatalf("expected default filter all, got %q", svc.lastFilter)
	}
}

func TestListFeedKnownFiltersAccepted(t *testing.T) {
	for _, filter := range []string{"all", "recent", "popular", "trending"} {
		svc := &mockPostService{list: &dto.PostListDTO{CurrentPage: 1, TotalPages: 1}}
		r := setupPostRouter(svc)

		body := doRequest(t, r, http.MethodGet, "/api/posts?filter="+filter)
		if body.Code != 200 {
			t.Fatalf("filter %q should be accepted, got code %d", filter, body.Code)
		}
		if svc.lastFilter != filter {
			t.Fatalf("filter %q not forwarded, service saw %q", filter, svc.lastFilter)
		}
	}
}

func TestListFeedRejectsUnknownFilter(t *testing.T) {
	svc := &mockPostService{list: &dto.PostListDTO{}}
	r := setupPostRouter(svc)

	body := doRequest(t, r, http.MethodGet, "/api/posts?filter=terpanas")
	if body.Code != 400 {
		t.Fatalf("expected code 400 for unknown filter, got %d", body.Code)
	}
	if svc.lastFilter != "" {
		t.Fatal("unknown filter must be rejected before the service runs")
	}
}

func TestListFeedRejectsMalformedPage(t *testing.T) {
	r := setupPostRouter(&mockPostService{})

	body := doRequest(t, r, http.MethodGet, "/api/posts?page=abc")
	if body.Code != 400 {
		t.Fatalf("expected code 400 for malformed page, got %d", body.Code)
	}
}

func TestListFeedMapsPageOutOfRange(t *testing.T) {
	svc := &mockPostService{listErr: service.ErrPageOutOfRange}
	r := setupPostRouter(svc)

	body := doRequest(t, r, http.MethodGet, "/api/posts?page=99")
	if body.Code != 400 {
		t.Fatalf("expected code 400 for out-of-range page, got %d", body.Code)
	}
	if body.Message != service.ErrPageOutOfRange.Error() {
		t.Fatalf("unexpected message %q", body.Message)
	}
}

func TestGetPostNotFound(t *testing.T) {
	r := setupPostRouter(&mockPostService{})

	body := doRequest(t, r, http.MethodGet, "/api/posts/999")
	if body.Code != 404 {
		t.Fatalf("expected code 404, got %d", body.Code)
	}
}

func TestGetPostInvalidID(t *testing.T) {
	r := setupPostRouter(&mockPostService{})

	body := doRequest(t, r, http.MethodGet, "/api/posts/0")
	if body.Code != 400 {
		t.Fatalf("expected code 400 for id 0, got %d", body.Code)
	}
}
