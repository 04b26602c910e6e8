package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjmanish/TheMovieSite/apperrors"
)

// fakeMetadataClient records the last call and echoes a canned body, so
// tests can see exactly what the service forwarded.
type fakeMetadataClient struct {
	body      json.RawMessage
	err       error
	calls     int
	lastQuery string
	lastPage  int
}

func (f *fakeMetadataClient) SearchMovies(_ context.Context, query string, page int) (json.RawMessage, error) {
	f.calls++
	f.lastQuery = query
	f.lastPage = page
	return f.body, f.err
}

func (f *fakeMetadataClient) PopularMovies(_ context.Context, page int) (json.RawMessage, error) {
	f.calls++
	f.lastPage = page
	return f.body, f.err
}

func TestMovieSearchRequiresQuery(t *testing.T) {
	client := &fakeMetadataClient{}
	svc := NewMovieService(client)

	_, err := svc.Search(context.Background(), "", 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	assert.Zero(t, client.calls, "validation failure must not reach the provider")
}

func TestMovieSearchForwardsResponseVerbatim(t *testing.T) {
	body := json.RawMessage(`{"page":2,"results":[{"id":603,"title":"The Matrix"}]}`)
	client := &fakeMetadataClient{body: body}
	svc := NewMovieService(client)

	got, err := svc.Search(context.Background(), "matrix", 2)
	require.NoError(t, err)
	assert.Equal(t, body, got)
	assert.Equal(t, "matrix", client.lastQuery)
	assert.Equal(t, 2, client.lastPage)
}

func TestMoviePopularForwardsResponseVerbatim(t *testing.T) {
	body := json.RawMessage(`{"page":1,"results":[]}`)
	client := &fakeMetadataClient{body: body}
	svc := NewMovieService(client)

	got, err := svc.Popular(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, body, got)
	assert.Equal(t, 1, client.lastPage)
}

func TestMovieSearchPropagatesProviderError(t *testing.T) {
	client := &fakeMetadataClient{err: errors.New("provider down")}
	svc := NewMovieService(client)

	_, err := svc.Search(context.Background(), "matrix", 1)
	require.Error(t, err)
	assert.False(t, errors.Is(err, apperrors.ErrInvalidInput))
}
