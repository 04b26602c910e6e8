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

// ArchiveClient queries the Internet Archive's advanced search for public
// domain movies.
type ArchiveClient struct {
	baseURL string
	client  *http.Client
}

func NewArchiveClient(baseURL string) *ArchiveClient {
	return &ArchiveClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Search forwards the query to the advanced search endpoint, scoped to the
// movies mediatype, and returns the inner response object verbatim.
func (c *ArchiveClient) Search(ctx context.Context, query string, page, rows int) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("q", fmt.Sprintf("%s AND mediatype:movies", query))
	params.Add("fl[]", "identifier")
	params.Add("fl[]", "title")
	params.Add("fl[]", "description")
	params.Set("rows", fmt.Sprintf("%d", rows))
	params.Set("page", fmt.Sprintf("%d", page))
	params.Set("output", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request to Internet Archive: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading Internet Archive response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Internet Archive returned status %d", resp.StatusCode)
	}

	var wrapper struct {
		Response json.RawMessage `json:"response"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil, fmt.Errorf("error decoding Internet Archive response: %v", err)
	}
	if wrapper.Response == nil {
		return nil, fmt.Errorf("Internet Archive response missing results")
	}

	return wrapper.Response, nil
}
