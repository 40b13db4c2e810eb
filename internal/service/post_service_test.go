package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"panganjawara/internal/api/config"
	"panganjawara/internal/api/dto"
	"panganjawara/internal/model"
	"panganjawara/internal/pkg/es"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	old := config.Cfg
	config.Cfg = &config.Config{
		MinIO:  config.MinIOConfig{PublicBaseURL: "http://cdn.test/bucket"},
		Portal: config.PortalConfig{BaseURL: "http://portal.test/", JWTSecret: "test-secret"},
	}
	t.Cleanup(func() { config.Cfg = old })
}

type mockPostRepo struct {
	posts       []*model.Post
	total       int64
	listCalled  bool
	lastLimit   int
	lastOffset  int
	lastFilter  string
	getPost     *model.Post
	countErr    error
	createdPost *model.Post
	claimedIDs  []uint64
}

func (m *mockPostRepo) CreatePost(ctx context.Context, post *model.Post, imageIDs []uint64) error {
	post.ID = 42
	m.createdPost = post
	m.claimedIDs = imageIDs
	return nil
}

func (m *mockPostRepo) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	if m.getPost == nil || m.getPost.ID != id {
		return nil, ErrPostNotFound
	}
	return m.getPost, nil
}

func (m *mockPostRepo) GetPostByIds(ctx context.Context, ids []uint64) ([]*model.Post, error) {
	return m.posts, nil
}

func (m *mockPostRepo) ListPosts(ctx context.Context, filter string, limit, offset int) ([]*model.Post, error) {
	m.listCalled = true
	m.lastLimit = limit
	m.lastOffset = offset
	m.lastFilter = filter
	return m.posts, nil
}

func (m *mockPostRepo) CountPosts(ctx context.Context, filter string) (int64, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.total, nil
}

func (m *mockPostRepo) UpdatePostCounts(ctx context.Context, id uint64, likes, shares, comments, views int64) error {
	return nil
}

func (m *mockPostRepo) DeletePost(ctx context.Context, id uint64) error { return nil }

type mockActionService struct {
	likeCounts    map[uint64]int64
	commentCounts map[uint64]int64
	likedIDs      map[uint64]bool
}

func (m *mockActionService) ToggleLike(ctx context.Context, viewerKey string, postID uint64) (*dto.LikeResultDTO, error) {
	return nil, errors.New("not implemented")
}

func (m *mockActionService) SharePost(ctx context.Context, viewerKey string, postID uint64) (*dto.ShareResultDTO, error) {
	return nil, errors.New("not implemented")
}

func (m *mockActionService) IsLiked(ctx context.Context, viewerKey string, postID uint64) (bool, error) {
	return m.likedIDs[postID], nil
}

func (m *mockActionService) GetLikedPostIDs(ctx context.Context, viewerKey string, postIDs []uint64) (map[uint64]bool, error) {
	return m.likedIDs, nil
}

func (m *mockActionService) CreateComment(ctx context.Context, viewerKey string, postID uint64, req *dto.CreateCommentDTO) (*dto.CommentDTO, error) {
	return nil, errors.New("not implemented")
}

func (m *mockActionService) DeleteComment(ctx context.Context, commentID uint64) error { return nil }

func (m *mockActionService) GetCommentsByPostID(ctx context.Context, viewerKey string, postID uint64, page, pageSize int) ([]*dto.CommentDTO, error) {
	return nil, nil
}

func (m *mockActionService) ToggleCommentLike(ctx context.Context, viewerKey string, commentID uint64) (*dto.LikeResultDTO, error) {
	return nil, errors.New("not implemented")
}

func (m *mockActionService) GetPostLikeCount(ctx context.Context, postID uint64) (int64, error) {
	return m.likeCounts[postID], nil
}

func (m *mockActionService) GetPostShareCount(ctx context.Context, postID uint64) (int64, error) {
	return 0, nil
}

func (m *mockActionService) GetPostCommentCount(ctx context.Context, postID uint64) (int64, error) {
	return m.commentCounts[postID], nil
}

func (m *mockActionService) GetPostViewCount(ctx context.Context, postID uint64) (int64, error) {
	return 0, nil
}

func (m *mockActionService) GetCommentLikeCount(ctx context.Context, commentID uint64) (int64, error) {
	return 0, nil
}

type mockContentRepo struct {
	indexed   []*es.ContentES
	deletedID uint64
}

func (m *mockContentRepo) Search(ctx context.Context, keyword string, docType string, from, size int) ([]*es.ContentES, error) {
	return nil, nil
}

func (m *mockContentRepo) GetByID(ctx context.Context, docType string, id uint64) (*es.ContentES, error) {
	return nil, nil
}

func (m *mockContentRepo) IndexContent(ctx context.Context, doc *es.ContentES, version int64) error {
	m.indexed = append(m.indexed, doc)
	return nil
}

func (m *mockContentRepo) DeleteContent(ctx context.Context, docType string, id uint64) error {
	m.deletedID = id
	return nil
}

func makePosts(n int) []*model.Post {
	posts := make([]*model.Post, 0, n)
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		posts = append(posts, &model.Post{
			ID:        uint64(i + 1),
			Author:    "Petani",
			Content:   "isi postingan",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	return posts
}

func newFeedService(repo *mockPostRepo, action *mockActionService) PostService {
	return NewPostService(repo, nil, action, &mockContentRepo{}, nil)
}

func TestListFeedEnvelope(t *testing.T) {
	setTestConfig(t)

	repo := &mockPostRepo{total: 25, posts: makePosts(5)}
	action := &mockActionService{
		likeCounts:    map[uint64]int64{},
		commentCounts: map[uint64]int64{},
		likedIDs:      map[uint64]bool{2: true},
	}
	svc := newFeedService(repo, action)

	list, err := svc.ListFeed(context.Background(), "viewer-1", 3, 10, "all")
	if err != nil {
		t.Fatalf("ListFeed returned error: %v", err)
	}

	if list.CurrentPage != 3 || list.TotalPages != 3 || list.TotalPosts != 25 {
		t.Fatalf("envelope mismatch: page=%d totalPages=%d totalPosts=%d",
			list.CurrentPage, list.TotalPages, list.TotalPosts)
	}
	if list.Summary != "Halaman 3 dari 3 • 25 total postingan" {
		t.Fatalf("unexpected summary %q", list.Summary)
	}
	if repo.lastLimit != 10 || repo.lastOffset != 20 {
		t.Fatalf("expected limit=10 offset=20, got limit=%d offset=%d", repo.lastLimit, repo.lastOffset)
	}
	if len(list.Posts) != 5 {
		t.Fatalf("expected 5 posts on the last page, got %d", len(list.Posts))
	}
}

func TestListFeedNewestFirst(t *testing.T) {
	setTestConfig(t)

	repo := &mockPostRepo{total: 5, posts: makePosts(5)}
	action := &mockActionService{likeCounts: map[uint64]int64{}, commentCounts: map[uint64]int64{}}
	svc := newFeedService(repo, action)

	list, err := svc.ListFeed(context.Background(), "viewer-1", 1, 10, "all")
	if err != nil {
		t.Fatalf("ListFeed returned error: %v", err)
	}

	for i := 1; i < len(list.Posts); i++ {
		if list.Posts[i-1].CreatedAt < list.Posts[i].CreatedAt {
			t.Fatalf("feed not sorted newest first: %q before %q",
				list.Posts[i-1].CreatedAt, list.Posts[i].CreatedAt)
		}
	}
}

func TestListFeedPageOutOfRange(t *testing.T) {
	setTestConfig(t)

	repo := &mockPostRepo{total: 25}
	action := &mockActionService{}
	svc := newFeedService(repo, action)

	_, err := svc.ListFeed(context.Background(), "viewer-1", 4, 10, "all")
	if !errors.Is(err, ErrPageOutOfRange) {
		t.Fatalf("expected ErrPageOutOfRange, got %v", err)
	}
	if repo.listCalled {
		t.Fatal("list query must not run for an out-of-range page")
	}
}

func TestListFeedRejectsNonPositivePage(t *testing.T) {
	setTestConfig(t)

	svc := newFeedService(&mockPostRepo{}, &mockActionService{})

	if _, err := svc.ListFeed(context.Background(), "v", 0, 10, "all"); !errors.Is(err, ErrPageOutOfRange) {
		t.Fatalf("page 0 should be rejected, got %v", err)
	}
	if _, err := svc.ListFeed(context.Background(), "v", 1, 0, "all"); !errors.Is(err, ErrPageOutOfRange) {
		t.Fatalf("page size 0 should be rejected, got %v", err)
	}
}

func TestListFeedEmptyStillOnePage(t *testing.T) {
	setTestConfig(t)

	repo := &mockPostRepo{total: 0, posts: nil}
	svc := newFeedService(repo, &mockActionService{})

	list, err := svc.ListFeed(context.Background(), "v", 1, 10, "all")
	if err != nil {
		t.Fatalf("empty feed must still serve page 1: %v", err)
	}
	if list.TotalPages != 1 || len(list.Posts) != 0 {
		t.Fatalf("expected empty single page, got totalPages=%d posts=%d",
			list.TotalPages, len(list.Posts))
	}
}

func TestListFeedMarksTrendingPosts(t *testing.T) {
	setTestConfig(t)

	repo := &mockPostRepo{total: 2, posts: makePosts(2)}
	action := &mockActionService{
		likeCounts:    map[uint64]int64{1: 6},
		commentCounts: map[uint64]int64{2: 2},
	}
	svc := newFeedService(repo, action)

	list, err := svc.ListFeed(context.Background(), "v", 1, 10, "all")
	if err != nil {
		t.Fatalf("ListFeed returned error: %v", err)
	}

	byID := map[uint64]*dto.PostDTO{}
	for _, p := range list.Posts {
		byID[p.ID] = p
	}
	if !byID[1].IsTrending {
		t.Fatal("post with 6 likes must be trending")
	}
	if byID[2].IsTrending {
		t.Fatal("post with 2 comments must not be trending")
	}
}

func TestShareURL(t *testing.T) {
	setTestConfig(t)

	if got := ShareURL(7); got != "http://portal.test/posts/7" {
		t.Fatalf("unexpected share URL %q", got)
	}
}

func TestListFeedPopularKeepsRepoOrder(t *testing.T) {
	setTestConfig(t)

	// urutan dari repo: paling disukai dulu, justru kebalikan kronologis
	posts := makePosts(3)
	posts[0], posts[2] = posts[2], posts[0]
	repo := &mockPostRepo{total: 3, posts: posts}
	action := &mockActionService{likeCounts: map[uint64]int64{}, commentCounts: map[uint64]int64{}}
	svc := newFeedService(repo, action)

	list, err := svc.ListFeed(context.Background(), "v", 1, 10, "popular")
	if err != nil {
		t.Fatalf("ListFeed returned error: %v", err)
	}

	if repo.lastFilter != "popular" {
		t.Fatalf("expected filter forwarded to repo, got %q", repo.lastFilter)
	}
	if list.Posts[0].ID != 3 || list.Posts[2].ID != 1 {
		t.Fatalf("popular order from repo must be preserved, got %d,%d,%d",
			list.Posts[0].ID, list.Posts[1].ID, list.Posts[2].ID)
	}
}

func TestListFeedRejectsUnknownFilter(t *testing.T) {
	setTestConfig(t)

	repo := &mockPostRepo{total: 5, posts: makePosts(5)}
	svc := newFeedService(repo, &mockActionService{})

	_, err := svc.ListFeed(context.Background(), "v", 1, 10, "terpanas")
	if !errors.Is(err, ErrParamInvalid) {
		t.Fatalf("expected ErrParamInvalid for unknown filter, got %v", err)
	}
	if repo.listCalled {
		t.Fatal("unknown filter must be rejected before any query")
	}
}
