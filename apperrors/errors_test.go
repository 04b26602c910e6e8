package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", InvalidInput("movieId is required"), http.StatusBadRequest},
		{"unauthenticated", Unauthenticated("invalid token"), http.StatusUnauthorized},
		{"conflict", Conflict("movie already in watchlist"), http.StatusConflict},
		{"not found", NotFound("watchlist not found"), http.StatusNotFound},
		{"internal", Internal(fmt.Errorf("mongo down")), http.StatusInternalServerError},
		{"untyped", errors.New("something unexpected"), http.StatusInternalServerError},
		{"wrapped sentinel", fmt.Errorf("adding movie: %w", ErrConflict), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorsMatchSentinels(t *testing.T) {
	assert.True(t, errors.Is(InvalidInput("x"), ErrInvalidInput))
	assert.True(t, errors.Is(Unauthenticated("x"), ErrUnauthenticated))
	assert.True(t, errors.Is(Conflict("x"), ErrConflict))
	assert.True(t, errors.Is(NotFound("x"), ErrNotFound))
}

// 500-class failures must not leak their cause to the caller.
func TestMessageHidesInternalDetail(t *testing.T) {
	err := Internal(fmt.Errorf("connection to mongodb://secret-host refused"))
	assert.Equal(t, "server error", Message(err))

	assert.Equal(t, "server error", Message(errors.New("raw driver error")))
}

func TestMessageForClientErrors(t *testing.T) {
	assert.Equal(t, "movie already in watchlist", Message(Conflict("movie already in watchlist")))
	assert.Equal(t, "movieId is required", Message(InvalidInput("movieId is required")))
}
