package es

import (
	"context"
	"errors"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/core/search"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/versiontype"
	"github.com/goccy/go-json"
)

const MaxSearchDepth = 400

type ContentRepo interface {
	Search(ctx context.Context, keyword string, docType string, from, size int) ([]*ContentES, error)
	GetByID(ctx context.Context, docType string, id uint64) (*ContentES, error)
	IndexContent(ctx context.Context, doc *ContentES, version int64) error
	DeleteContent(ctx context.Context, docType string, id uint64) error
}

type ContentRepoImpl struct {
	client *elasticsearch.TypedClient
}

func NewContentRepo(client *elasticsearch.TypedClient) ContentRepo {
	return &ContentRepoImpl{client: client}
}

// docID menyatukan postingan dan artikel dalam satu indeks.
func docID(docType string, id uint64) string {
	return docType + "-" + strconv.FormatUint(id, 10)
}

func (s *ContentRepoImpl) Search(ctx context.Context, keyword string, docType string, from, size int) ([]*ContentES, error) {
	if from >= MaxSearchDepth {
		return []*ContentES{}, nil
	}

	filters := []types.Query{
		{
			Term: map[string]types.TermQuery{
				"status": {Value: "published"},
			},
		},
	}
	if docType != "" {
		filters = append(filters, types.Query{
			Term: map[string]types.TermQuery{
				"doc_type": {Value: docType},
			},
		})
	}

	req := s.client.Search().
		Index(ContentIndex).
		Query(&types.Query{
			Bool: &types.BoolQuery{
				Must: []types.Query{
					{
						MultiMatch: &types.MultiMatchQuery{
							Query:  keyword,
							Fields: []string{"title^2", "plain_content", "tags"},
						},
					},
				},
				Filter: filters,
			},
		}).
		Sort(types.SortOptions{SortOptions: map[string]types.FieldSort{
			"created_at": {Order: &sortorder.Desc},
		}}).
		From(from).
		Size(size)

	return s.executeSearch(ctx, req)
}

func (s *ContentRepoImpl) GetByID(ctx context.Context, docType string, id uint64) (*ContentES, error) {
	result, err := s.client.Get(ContentIndex, docID(docType, id)).Do(ctx)
	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == NotFoundCode {
				return nil, nil
			}
		}
		return nil, err
	}
	if result.Source_ == nil {
		return nil, nil
	}
	var doc ContentES
	if err = json.Unmarshal(result.Source_, &doc); err != nil {
		return nil, err
	}
	if doc.Tags == nil {
		doc.Tags = make([]string, 0)
	}
	return &doc, nil
}

func (s *ContentRepoImpl) IndexContent(ctx context.Context, doc *ContentES, version int64) error {
	_, err := s.client.Index(ContentIndex).
		Id(docID(doc.DocType, doc.ID)).
		Document(doc).
		Version(strconv.FormatInt(version, 10)).
		VersionType(versiontype.External).
		Do(ctx)

	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			// conflict means a newer version is already indexed
			if e.Status == ConflictCode {
				return nil
			}
		}
		return err
	}

	return nil
}

func (s *ContentRepoImpl) DeleteContent(ctx context.Context, docType string, id uint64) error {
	_, err := s.client.Delete(ContentIndex, docID(docType, id)).Do(ctx)

	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == NotFoundCode {
				return nil
			}
		}
		return err
	}

	return nil
}

func (s *ContentRepoImpl) executeSearch(ctx context.Context, req *search.Search) ([]*ContentES, error) {
	resp, err := req.Do(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*ContentES, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var doc ContentES
		if hit.Source_ == nil {
			continue
		}
		if err = json.Unmarshal(hit.Source_, &doc); err != nil {
			continue
		}
		results = append(results, &doc)
	}
	return results, nil
}
