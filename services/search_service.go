package services

import (
	"context"
	"encoding/json"

	"github.com/bjmanish/TheMovieSite/apperrors"
)

// ArchiveSearcher is the public-domain movie search provider; results are
// forwarded verbatim.
type ArchiveSearcher interface {
	Search(ctx context.Context, query string, page, rows int) (json.RawMessage, error)
}

type SearchService struct {
	archive ArchiveSearcher
}

func NewSearchService(archive ArchiveSearcher) *SearchService {
	return &SearchService{archive: archive}
}

func (s *SearchService) Search(ctx context.Context, query string, page, rows int) (json.RawMessage, error) {
	if query == "" {
		return nil, apperrors.InvalidInput("missing 'query' parameter")
	}
	if page < 1 {
		page = 1
	}
	if rows < 1 {
		rows = 10
	}
	return s.archive.Search(ctx, query, page, rows)
}
