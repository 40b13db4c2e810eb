package handler

import (
	"strconv"

	"panganjawara/internal/pkg/mongo"
	"panganjawara/internal/pkg/response"
	"panganjawara/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService service.StatsService
	auditRepo    mongo.AuditRepo
}

func NewStatsHandler(statsService service.StatsService, auditRepo mongo.AuditRepo) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		auditRepo:    auditRepo,
	}
}

func (s *StatsHandler) GetDashboard(c *gin.Context) {
	stats, err := s.statsService.GetDashboardStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}

func (s *StatsHandler) GetPopularPosts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	posts, err := s.statsService.GetPopularPosts(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// GetAuditLog menampilkan jejak aksi admin, terbaru dulu.
func (s *StatsHandler) GetAuditLog(c *gin.Context) {
	page, pageSize, ok := parsePage(c, 20)
	if !ok {
		return
	}

	entries, total, err := s.auditRepo.List(c.Request.Context(), c.Query("entity"),
		int64(pageSize), int64((page-1)*pageSize))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"entries": entries, "total": total})
}
