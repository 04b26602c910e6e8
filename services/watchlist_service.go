package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bjmanish/TheMovieSite/apperrors"
	"github.com/bjmanish/TheMovieSite/models"
)

// WatchlistStore is the persistence contract for the per-user watchlist
// document. PushMovie must be an atomic "insert unless present" so two
// concurrent adds cannot both land.
type WatchlistStore interface {
	PushMovie(ctx context.Context, userID primitive.ObjectID, entry models.WatchlistEntry) error
	PullMovie(ctx context.Context, userID primitive.ObjectID, movieID string) error
	FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Watchlist, error)
}

// WatchlistService implements add/list/remove over a user's watchlist.
// Every operation takes the identity resolved by the auth middleware; a
// caller can never name another user's collection.
type WatchlistService struct {
	store WatchlistStore
}

func NewWatchlistService(store WatchlistStore) *WatchlistService {
	return &WatchlistService{store: store}
}

// Add appends a movie to the user's watchlist, creating the watchlist on
// first use. Adding a movie that is already present fails with Conflict.
// Returns the updated entry list.
func (s *WatchlistService) Add(ctx context.Context, userID primitive.ObjectID, movieID, title, poster string) ([]models.WatchlistEntry, error) {
	if movieID == "" {
		return nil, apperrors.InvalidInput("movieId is required")
	}

	entry := models.WatchlistEntry{
		MovieID: movieID,
		Title:   title,
		Poster:  poster,
		AddedAt: time.Now(),
	}

	if err := s.store.PushMovie(ctx, userID, entry); err != nil {
		return nil, err
	}

	return s.List(ctx, userID)
}

// List returns the user's entries in insertion order. A user who has never
// added anything gets an empty list, not an error.
func (s *WatchlistService) List(ctx context.Context, userID primitive.ObjectID) ([]models.WatchlistEntry, error) {
	watchlist, err := s.store.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading watchlist: %w", err)
	}
	if watchlist == nil || watchlist.Movies == nil {
		return []models.WatchlistEntry{}, nil
	}
	return watchlist.Movies, nil
}

// Remove deletes the entry matching movieID and returns the updated list.
// Removing from a missing watchlist or removing an absent movie both fail
// with NotFound.
func (s *WatchlistService) Remove(ctx context.Context, userID primitive.ObjectID, movieID string) ([]models.WatchlistEntry, error) {
	if movieID == "" {
		return nil, apperrors.InvalidInput("movieId is required")
	}

	if err := s.store.PullMovie(ctx, userID, movieID); err != nil {
		return nil, err
	}

	return s.List(ctx, userID)
}
