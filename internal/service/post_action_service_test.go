package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"panganjawara/internal/api/dto"
	"panganjawara/internal/model"
	"panganjawara/internal/pkg/consts"
)

// fakeCounterCache adalah pengganti redis dalam memori untuk menguji
// alur like/share tanpa instans redis.
type fakeCounterCache struct {
	values    map[string]int64
	dirty     map[string][]string
	published [][]byte
}

func newFakeCounterCache() *fakeCounterCache {
	return &fakeCounterCache{
		values: make(map[string]int64),
		dirty:  make(map[string][]string),
	}
}

func (f *fakeCounterCache) GetInt64(ctx context.Context, key string) (int64, bool, error) {
	value, found := f.values[key]
	return value, found, nil
}

func (f *fakeCounterCache) Set(ctx context.Context, key string, value int64, expiration time.Duration) error {
	f.values[key] = value
	return nil
}

func (f *fakeCounterCache) Delete(ctx context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func (f *fakeCounterCache) MarkDirty(ctx context.Context, setKey, member string) error {
	f.dirty[setKey] = append(f.dirty[setKey], member)
	return nil
}

func (f *fakeCounterCache) Publish(ctx context.Context, channel string, payload []byte) error {
	f.published = append(f.published, payload)
	return nil
}

type mockActionRepo struct {
	comments            map[uint64]*model.Comment
	createCommentCalled bool
	claimedImageIDs     []uint64
	listCommentsCalled  bool

	likes         map[string]bool
	likeCount     int64
	createLikeErr error
	shareCount    int64
}

func likeKey(viewerKey string, postID uint64) string {
	return viewerKey + ":" + strconv.FormatUint(postID, 10)
}

func (m *mockActionRepo) CreateLike(ctx context.Context, like *model.Like) error {
	if m.createLikeErr != nil {
		return m.createLikeErr
	}
	if m.likes == nil {
		m.likes = make(map[string]bool)
	}
	m.likes[likeKey(like.ViewerKey, like.PostID)] = true
	m.likeCount++
	return nil
}

func (m *mockActionRepo) DeleteLike(ctx context.Context, viewerKey string, postID uint64) error {
	if m.likes[likeKey(viewerKey, postID)] {
		delete(m.likes, likeKey(viewerKey, postID))
		m.likeCount--
	}
	return nil
}

func (m *mockActionRepo) CheckLikeExists(ctx context.Context, viewerKey string, postID uint64) (bool, error) {
	return m.likes[likeKey(viewerKey, postID)], nil
}

func (m *mockActionRepo) GetLikeCountByPostID(ctx context.Context, postID uint64) (int64, error) {
	return m.likeCount, nil
}

func (m *mockActionRepo) GetLikedPostIDs(ctx context.Context, viewerKey string, postIDs []uint64) ([]uint64, error) {
	return nil, nil
}

func (m *mockActionRepo) CreateShare(ctx context.Context, share *model.Share) error {
	m.shareCount++
	return nil
}

func (m *mockActionRepo) GetShareCountByPostID(ctx context.Context, postID uint64) (int64, error) {
	return m.shareCount, nil
}

func (m *mockActionRepo) CreateComment(ctx context.Context, comment *model.Comment, imageIDs []uint64) error {
	m.createCommentCalled = true
	m.claimedImageIDs = imageIDs
	comment.ID = 1
	for _, id := range imageIDs {
		comment.Images = append(comment.Images, model.Image{ID: id, FileKey: "k", OwnerType: consts.OwnerComment, OwnerID: comment.ID})
	}
	if m.comments == nil {
		m.comments = make(map[uint64]*model.Comment)
	}
	m.comments[comment.ID] = comment
	return nil
}

func (m *mockActionRepo) DeleteComment(ctx context.Context, commentID uint64) error { return nil }

func (m *mockActionRepo) GetCommentByID(ctx context.Context, commentID uint64) (*model.Comment, error) {
	return m.comments[commentID], nil
}

func (m *mockActionRepo) GetCommentsByPostID(ctx context.Context, postID uint64, limit, offset int) ([]*model.Comment, error) {
	m.listCommentsCalled = true
	return nil, nil
}

func (m *mockActionRepo) GetCommentCountByPostID(ctx context.Context, postID uint64) (int64, error) {
	return 0, nil
}

func (m *mockActionRepo) UpdateCommentLikesCount(ctx context.Context, commentID uint64, count int64) error {
	return nil
}

func (m *mockActionRepo) CreateCommentLike(ctx context.Context, cl *model.CommentLike) error {
	return nil
}

func (m *mockActionRepo) DeleteCommentLike(ctx context.Context, viewerKey string, commentID uint64) error {
	return nil
}

func (m *mockActionRepo) CheckCommentLikeExists(ctx context.Context, viewerKey string, commentID uint64) (bool, error) {
	return false, nil
}

func (m *mockActionRepo) GetCommentLikeCount(ctx context.Context, commentID uint64) (int64, error) {
	return 0, nil
}

func (m *mockActionRepo) GetLikedCommentIDs(ctx context.Context, viewerKey string, commentIDs []uint64) ([]uint64, error) {
	return nil, nil
}

func newActionService(actionRepo *mockActionRepo, postRepo *mockPostRepo, cache CounterCache) PostActionService {
	return NewPostActionService(actionRepo, postRepo, cache, nil)
}

func TestToggleLikeTwiceRestoresState(t *testing.T) {
	setTestConfig(t)

	actionRepo := &mockActionRepo{}
	postRepo := &mockPostRepo{posts: []*model.Post{{ID: 1}}}
	cache := newFakeCounterCache()
	svc := newActionService(actionRepo, postRepo, cache)

	first, err := svc.ToggleLike(context.Background(), "viewer-1", 1)
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if !first.Liked || first.LikeCount != 1 {
		t.Fatalf("after first toggle expected liked=true count=1, got %+v", first)
	}

	second, err := svc.ToggleLike(context.Background(), "viewer-1", 1)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if second.Liked || second.LikeCount != 0 {
		t.Fatalf("double toggle must restore state, got %+v", second)
	}
	if cache.values[consts.PostLikeKey+"1"] != 0 {
		t.Fatalf("cached like count not restored: %d", cache.values[consts.PostLikeKey+"1"])
	}
}

func TestSharePostAlwaysIncrements(t *testing.T) {
	setTestConfig(t)

	actionRepo := &mockActionRepo{}
	postRepo := &mockPostRepo{posts: []*model.Post{{ID: 1}}}
	svc := newActionService(actionRepo, postRepo, newFakeCounterCache())

	first, err := svc.SharePost(context.Background(), "viewer-1", 1)
	if err != nil {
		t.Fatalf("first share failed: %v", err)
	}
	if first.ShareCount != 1 {
		t.Fatalf("expected share count 1, got %d", first.ShareCount)
	}

	// viewer yang sama membagikan lagi: tetap bertambah, bukan toggle
	second, err := svc.SharePost(context.Background(), "viewer-1", 1)
	if err != nil {
		t.Fatalf("second share failed: %v", err)
	}
	if second.ShareCount != 2 {
		t.Fatalf("repeat share must increment, got %d", second.ShareCount)
	}
	if second.ShareURL != "http://portal.test/posts/1" {
		t.Fatalf("unexpected share URL %q", second.ShareURL)
	}
}

func TestToggleLikeStorageFailureLeavesCountersUntouched(t *testing.T) {
	setTestConfig(t)

	actionRepo := &mockActionRepo{createLikeErr: errors.New("koneksi database putus")}
	postRepo := &mockPostRepo{posts: []*model.Post{{ID: 1}}}
	cache := newFakeCounterCache()
	cache.values[consts.PostLikeKey+"1"] = 5
	svc := newActionService(actionRepo, postRepo, cache)

	_, err := svc.ToggleLike(context.Background(), "viewer-1", 1)
	if err == nil {
		t.Fatal("expected storage error to surface")
	}
	if cache.values[consts.PostLikeKey+"1"] != 5 {
		t.Fatalf("failed like must not touch the cached count, got %d", cache.values[consts.PostLikeKey+"1"])
	}
	if len(cache.dirty[consts.PostDirtyKey]) != 0 {
		t.Fatal("failed like must not mark the post dirty")
	}
}

func TestCreateCommentValidatesBeforeAnyStorage(t *testing.T) {
	tests := []struct {
		name    string
		req     *dto.CreateCommentDTO
		wantErr error
	}{
		{"blank author", &dto.CreateCommentDTO{Author: "   ", Content: "halo"}, ErrAuthorRequired},
		{"blank content", &dto.CreateCommentDTO{Author: "Siti", Content: " \t "}, ErrContentRequired},
		{"too many images", &dto.CreateCommentDTO{Author: "Siti", Content: "halo", ImageIDs: []uint64{1, 2, 3, 4, 5}}, ErrTooManyImages},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actionRepo := &mockActionRepo{}
			postRepo := &mockPostRepo{posts: []*model.Post{{ID: 1}}}
			svc := newActionService(actionRepo, postRepo, newFakeCounterCache())

			_, err := svc.CreateComment(context.Background(), "viewer-1", 1, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if actionRepo.createCommentCalled {
				t.Fatal("invalid comment must be rejected before storage")
			}
		})
	}
}

func TestCreateCommentClaimsPendingImages(t *testing.T) {
	setTestConfig(t)

	actionRepo := &mockActionRepo{}
	postRepo := &mockPostRepo{posts: []*model.Post{{ID: 1}}}
	svc := newActionService(actionRepo, postRepo, newFakeCounterCache())

	comment, err := svc.CreateComment(context.Background(), "viewer-1", 1,
		&dto.CreateCommentDTO{Author: "Siti", Content: "lihat fotonya", ImageIDs: []uint64{11, 12}})
	if err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}

	if len(actionRepo.claimedImageIDs) != 2 ||
		actionRepo.claimedImageIDs[0] != 11 || actionRepo.claimedImageIDs[1] != 12 {
		t.Fatalf("expected image ids passed to the claim, got %v", actionRepo.claimedImageIDs)
	}
	if len(comment.Images) != 2 {
		t.Fatalf("expected 2 attached images on the comment DTO, got %d", len(comment.Images))
	}
}

func TestCreateCommentRejectsMissingPost(t *testing.T) {
	actionRepo := &mockActionRepo{}
	svc := newActionService(actionRepo, &mockPostRepo{}, newFakeCounterCache())

	_, err := svc.CreateComment(context.Background(), "viewer-1", 99,
		&dto.CreateCommentDTO{Author: "Siti", Content: "halo"})
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
	if actionRepo.createCommentCalled {
		t.Fatal("comment on a missing post must not be stored")
	}
}

func TestCreateCommentRejectsParentFromOtherPost(t *testing.T) {
	actionRepo := &mockActionRepo{
		comments: map[uint64]*model.Comment{
			5: {ID: 5, PostID: 2},
		},
	}
	svc := newActionService(actionRepo, &mockPostRepo{posts: []*model.Post{{ID: 1}}}, newFakeCounterCache())

	_, err := svc.CreateComment(context.Background(), "viewer-1", 1,
		&dto.CreateCommentDTO{Author: "Siti", Content: "halo", ParentID: 5})
	if !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound for cross-post parent, got %v", err)
	}
	if actionRepo.createCommentCalled {
		t.Fatal("reply with invalid parent must not be stored")
	}
}

func TestGetCommentsRejectsNonPositivePaging(t *testing.T) {
	actionRepo := &mockActionRepo{}
	svc := newActionService(actionRepo, &mockPostRepo{posts: []*model.Post{{ID: 1}}}, newFakeCounterCache())

	if _, err := svc.GetCommentsByPostID(context.Background(), "v", 1, 0, 20); !errors.Is(err, ErrPageOutOfRange) {
		t.Fatalf("page 0 should be rejected, got %v", err)
	}
	if _, err := svc.GetCommentsByPostID(context.Background(), "v", 1, 1, -5); !errors.Is(err, ErrPageOutOfRange) {
		t.Fatalf("negative page size should be rejected, got %v", err)
	}
	if actionRepo.listCommentsCalled {
		t.Fatal("invalid paging must not reach the repo")
	}
}
