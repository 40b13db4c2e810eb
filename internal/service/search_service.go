package service

import (
	"context"
	"strings"

	"panganjawara/internal/api/dto"
	"panganjawara/internal/pkg/es"
)

type SearchService interface {
	Search(ctx context.Context, keyword, docType string, page, pageSize int) ([]*dto.SearchHitDTO, error)
}

type searchServiceImpl struct {
	esRepo es.ContentRepo
}

func NewSearchService(esRepo es.ContentRepo) SearchService {
	return &searchServiceImpl{esRepo: esRepo}
}

func (s *searchServiceImpl) Search(ctx context.Context, keyword, docType string, page, pageSize int) ([]*dto.SearchHitDTO, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrParamInvalid
	}
	if page < 1 || pageSize < 1 {
		return nil, ErrPageOutOfRange
	}
	if docType != "" && docType != es.DocTypePost && docType != es.DocTypeArticle {
		return nil, ErrParamInvalid
	}

	docs, err := s.esRepo.Search(ctx, keyword, docType, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	hits := make([]*dto.SearchHitDTO, 0, len(docs))
	for _, doc := range docs {
		excerpt := doc.PlainContent
		if runes := []rune(excerpt); len(runes) > 200 {
			excerpt = strings.TrimSpace(string(runes[:200])) + "…"
		}
		hits = append(hits, &dto.SearchHitDTO{
			ID:        doc.ID,
			DocType:   doc.DocType,
			Title:     doc.Title,
			Excerpt:   excerpt,
			Author:    doc.Author,
			Tags:      doc.Tags,
			CreatedAt: doc.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return hits, nil
}
