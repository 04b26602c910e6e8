package services

import (
	"context"
	"encoding/json"

	"github.com/bjmanish/TheMovieSite/apperrors"
)

// MetadataClient is the third-party movie metadata provider. Responses are
// forwarded to the caller verbatim; no local ranking, caching or reshaping.
type MetadataClient interface {
	SearchMovies(ctx context.Context, query string, page int) (json.RawMessage, error)
	PopularMovies(ctx context.Context, page int) (json.RawMessage, error)
}

type MovieService struct {
	metadata MetadataClient
}

func NewMovieService(metadata MetadataClient) *MovieService {
	return &MovieService{metadata: metadata}
}

func (s *MovieService) Search(ctx context.Context, query string, page int) (json.RawMessage, error) {
	if query == "" {
		return nil, apperrors.InvalidInput("missing 'query' parameter")
	}
	return s.metadata.SearchMovies(ctx, query, page)
}

func (s *MovieService) Popular(ctx context.Context, page int) (json.RawMessage, error) {
	return s.metadata.PopularMovies(ctx, page)
}
