package service

import (
	"context"
	log "log/slog"
	"time"

	"panganjawara/internal/api/dto"
	"panganjawara/internal/pkg/consts"
	"panganjawara/internal/pkg/markdown"
	"panganjawara/internal/pkg/redis"
	"panganjawara/internal/repository"

	"github.com/goccy/go-json"
)

const statsCacheExpiration = 5 * time.Minute

type StatsService interface {
	GetDashboardStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
	GetPopularPosts(ctx context.Context, limit int) ([]*dto.PopularPostDTO, error)
}

type statsServiceImpl struct {
	statsRepo repository.StatsRepo
}

func NewStatsService(statsRepo repository.StatsRepo) StatsService {
	return &statsServiceImpl{statsRepo: statsRepo}
}

func (s *statsServiceImpl) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	cached, err := redis.GetValue(ctx, consts.DashboardStatsKey)
	if err == nil && cached != "" {
		var stats dto.DashboardStatsDTO
		if err = json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	}

	totals, err := s.statsRepo.CountTotals(ctx)
	if err != nil {
		return nil, err
	}

	stats := buildDashboardStats(totals)

	if payload, err := json.Marshal(stats); err == nil {
		if err = redis.SetWithExpiration(ctx, consts.DashboardStatsKey, payload, statsCacheExpiration); err != nil {
			log.WarnContext(ctx, "cache dashboard stats failed", "err", err)
		}
	}

	return stats, nil
}

// buildDashboardStats memetakan agregat mentah ke DTO dashboard.
func buildDashboardStats(totals *repository.Totals) *dto.DashboardStatsDTO {
	return &dto.DashboardStatsDTO{
		TotalPosts:    totals.Posts,
		TotalArticles: totals.Articles,
		TotalEvents:   totals.Events,
		TotalVideos:   totals.Videos,
		TotalComments: totals.Comments,
		TotalLikes:    totals.Likes,
		TotalUsers:    totals.Users,
		TotalViews:    totals.Views,
	}
}

func (s *statsServiceImpl) GetPopularPosts(ctx context.Context, limit int) ([]*dto.PopularPostDTO, error) {
	if limit < 1 || limit > 20 {
		limit = 5
	}

	cached, err := redis.GetValue(ctx, consts.PopularContentKey)
	if err == nil && cached != "" {
		var list []*dto.PopularPostDTO
		if err = json.Unmarshal([]byte(cached), &list); err == nil && len(list) >= limit {
			return list[:limit], nil
		}
	}

	posts, err := s.statsRepo.GetPopularPosts(ctx, 20)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.PopularPostDTO, 0, len(posts))
	for _, post := range posts {
		list = append(list, &dto.PopularPostDTO{
			ID:           post.ID,
			Author:       post.Author,
			Excerpt:      markdown.PlainText(post.Content),
			LikeCount:    int64(post.LikesCount),
			CommentCount: int64(post.CommentsCount),
		})
	}

	if payload, err := json.Marshal(list); err == nil {
		_ = redis.SetWithExpiration(ctx, consts.PopularContentKey, payload, statsCacheExpiration)
	}

	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}
