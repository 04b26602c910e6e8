package data_access

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

type TMDBClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewTMDBClient(apiKey, baseURL string) *TMDBClient {
	return &TMDBClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// SearchMovies forwards a search query to TMDB and returns the response
// body verbatim.
func (c *TMDBClient) SearchMovies(ctx context.Context, query string, page int) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", "false")
	params.Set("language", "en-US")
	return c.get(ctx, "/search/movie", params, page)
}

// PopularMovies returns TMDB's popular listing verbatim.
func (c *TMDBClient) PopularMovies(ctx context.Context, page int) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("language", "en-US")
	return c.get(ctx, "/movie/popular", params, page)
}

func (c *TMDBClient) get(ctx context.Context, path string, params url.Values, page int) (json.RawMessage, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("TMDB API key not found")
	}

	params.Set("api_key", c.apiKey)
	if page > 0 {
		params.Set("page", fmt.Sprintf("%d", page))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request to TMDB API: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading TMDB response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("TMDB API returned status %d", resp.StatusCode)
	}

	return json.RawMessage(body), nil
}
