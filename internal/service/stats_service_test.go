package service

import (
	"testing"

	"panganjawara/internal/repository"
)

func TestBuildDashboardStatsCarriesAllTotals(t *testing.T) {
	stats := buildDashboardStats(&repository.Totals{
		Posts:    10,
		Articles: 4,
		Events:   2,
		Videos:   3,
		Comments: 25,
		Likes:    40,
		Users:    6,
		Views:    1234,
	})

	if stats.TotalPosts != 10 || stats.TotalArticles != 4 || stats.TotalEvents != 2 ||
		stats.TotalVideos != 3 || stats.TotalComments != 25 || stats.TotalLikes != 40 {
		t.Fatalf("content totals mismatch: %+v", stats)
	}
	if stats.TotalUsers != 6 {
		t.Fatalf("expected 6 users, got %d", stats.TotalUsers)
	}
	if stats.TotalViews != 1234 {
		t.Fatalf("expected 1234 views, got %d", stats.TotalViews)
	}
}
