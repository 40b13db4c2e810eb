package handler

import (
	"strconv"

	"panganjawara/internal/api/dto"
	"panganjawara/internal/pkg/consts"
	"panganjawara/internal/pkg/response"
	"panganjawara/internal/repository"
	"panganjawara/internal/service"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService service.ArticleService
}

func NewArticleHandler(articleService service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// ListPublished hanya menampilkan artikel berstatus published; endpoint
// admin memakai ListAll.
func (s *ArticleHandler) ListPublished(c *gin.Context) {
	page, pageSize, ok := parsePage(c, 12)
	if !ok {
		return
	}

	filter := repository.ArticleFilter{
		Status:   consts.ArticleStatusPublished,
		Category: c.Query("category"),
	}
	if c.Query("featured") == "true" {
		featured := true
		filter.Featured = &featured
	}

	list, err := s.articleService.ListArticles(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *ArticleHandler) GetPublished(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil || articleID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	article, err := s.articleService.GetArticle(c.Request.Context(), articleID, true)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, article)
}

func (s *ArticleHandler) ListAll(c *gin.Context) {
	page, pageSize, ok := parsePage(c, 20)
	if !ok {
		return
	}

	filter := repository.ArticleFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
	}

	list, err := s.articleService.ListArticles(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *ArticleHandler) GetArticle(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil || articleID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	article, err := s.articleService.GetArticle(c.Request.Context(), articleID, false)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, article)
}

func (s *ArticleHandler) CreateArticle(c *gin.Context) {
	var req dto.CreateArticleDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	article, err := s.articleService.CreateArticle(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, article)
}

func (s *ArticleHandler) UpdateArticle(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil || articleID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.UpdateArticleDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	article, err := s.articleService.UpdateArticle(c.Request.Context(), articleID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, article)
}

func (s *ArticleHandler) DeleteArticle(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil || articleID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.articleService.DeleteArticle(c.Request.Context(), articleID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// parsePage membaca parameter paginasi umum; false berarti respons
// error sudah ditulis.
func parsePage(c *gin.Context, defaultSize int) (int, int, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return 0, 0, false
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultSize)))
	if err != nil || pageSize > 100 {
		response.Error(c, service.ErrParamInvalid)
		return 0, 0, false
	}
	return page, pageSize, true
}
