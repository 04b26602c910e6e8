package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bjmanish/TheMovieSite/apperrors"
	"github.com/bjmanish/TheMovieSite/models"
)

// fakeWatchlistStore mirrors the conditional-update semantics of the mongo
// repository: push fails on a present movie, pull fails on an absent one.
type fakeWatchlistStore struct {
	lists map[primitive.ObjectID]*models.Watchlist
	calls int
}

func newFakeWatchlistStore() *fakeWatchlistStore {
	return &fakeWatchlistStore{lists: make(map[primitive.ObjectID]*models.Watchlist)}
}

func (f *fakeWatchlistStore) PushMovie(_ context.Context, userID primitive.ObjectID, entry models.WatchlistEntry) error {
	f.calls++
	wl, ok := f.lists[userID]
	if !ok {
		now := time.Now()
		wl = &models.Watchlist{ID: primitive.NewObjectID(), User: userID, CreatedAt: now, UpdatedAt: now}
		f.lists[userID] = wl
	}
	for _, m := range wl.Movies {
		if m.MovieID == entry.MovieID {
			return apperrors.Conflict("movie already in watchlist")
		}
	}
	wl.Movies = append(wl.Movies, entry)
	return nil
}

func (f *fakeWatchlistStore) PullMovie(_ context.Context, userID primitive.ObjectID, movieID string) error {
	f.calls++
	wl, ok := f.lists[userID]
	if !ok {
		return apperrors.NotFound("movie not in watchlist")
	}
	for i, m := range wl.Movies {
		if m.MovieID == movieID {
			wl.Movies = append(wl.Movies[:i], wl.Movies[i+1:]...)
			return nil
		}
	}
	return apperrors.NotFound("movie not in watchlist")
}

func (f *fakeWatchlistStore) FindByUser(_ context.Context, userID primitive.ObjectID) (*models.Watchlist, error) {
	f.calls++
	wl, ok := f.lists[userID]
	if !ok {
		return nil, nil
	}
	clone := *wl
	clone.Movies = append([]models.WatchlistEntry(nil), wl.Movies...)
	return &clone, nil
}

func TestListWithoutWatchlist(t *testing.T) {
	svc := NewWatchlistService(newFakeWatchlistStore())

	movies, err := svc.List(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)
	assert.Empty(t, movies)
	assert.NotNil(t, movies)
}

func TestAddRequiresMovieID(t *testing.T) {
	store := newFakeWatchlistStore()
	svc := NewWatchlistService(store)

	_, err := svc.Add(context.Background(), primitive.NewObjectID(), "", "The Matrix", "/poster.jpg")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	assert.Zero(t, store.calls, "validation failure must not reach the store")
}

func TestAddDuplicateConflict(t *testing.T) {
	svc := NewWatchlistService(newFakeWatchlistStore())
	userID := primitive.NewObjectID()

	_, err := svc.Add(context.Background(), userID, "603", "The Matrix", "/poster.jpg")
	require.NoError(t, err)

	_, err = svc.Add(context.Background(), userID, "603", "The Matrix", "/poster.jpg")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))

	// Exactly one entry for the movie survived the duplicate attempt.
	movies, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	count := 0
	for _, m := range movies {
		if m.MovieID == "603" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestRemoveAbsentNotFound(t *testing.T) {
	svc := NewWatchlistService(newFakeWatchlistStore())
	userID := primitive.NewObjectID()

	_, err := svc.Add(context.Background(), userID, "603", "The Matrix", "/poster.jpg")
	require.NoError(t, err)

	_, err = svc.Remove(context.Background(), userID, "550")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	// The failed remove left the list unchanged.
	movies, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "603", movies[0].MovieID)
}

func TestRemoveWithoutWatchlistNotFound(t *testing.T) {
	svc := NewWatchlistService(newFakeWatchlistStore())

	_, err := svc.Remove(context.Background(), primitive.NewObjectID(), "603")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestAddRemoveRoundTrip(t *testing.T) {
	svc := NewWatchlistService(newFakeWatchlistStore())
	userID := primitive.NewObjectID()

	_, err := svc.Add(context.Background(), userID, "603", "The Matrix", "/poster.jpg")
	require.NoError(t, err)

	movies, err := svc.Remove(context.Background(), userID, "603")
	require.NoError(t, err)
	assert.Empty(t, movies)

	movies, err = svc.List(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestInsertionOrderPreserved(t *testing.T) {
	svc := NewWatchlistService(newFakeWatchlistStore())
	userID := primitive.NewObjectID()

	for _, id := range []string{"603", "550", "680"} {
		_, err := svc.Add(context.Background(), userID, id, "", "")
		require.NoError(t, err)
	}

	movies, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, movies, 3)
	assert.Equal(t, "603", movies[0].MovieID)
	assert.Equal(t, "550", movies[1].MovieID)
	assert.Equal(t, "680", movies[2].MovieID)
}

// Two users' watchlists never bleed into each other: every operation is
// keyed by the acting identity.
func TestWatchlistsAreIsolatedPerUser(t *testing.T) {
	svc := NewWatchlistService(newFakeWatchlistStore())
	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()

	_, err := svc.Add(context.Background(), alice, "603", "The Matrix", "/poster.jpg")
	require.NoError(t, err)

	movies, err := svc.List(context.Background(), bob)
	require.NoError(t, err)
	assert.Empty(t, movies)

	_, err = svc.Remove(context.Background(), bob, "603")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	movies, err = svc.List(context.Background(), alice)
	require.NoError(t, err)
	assert.Len(t, movies, 1)
}

// End-to-end scenario across the auth and watchlist services: register,
// login, act under the token's identity, then empty the list again.
func TestAliceWatchlistScenario(t *testing.T) {
	authSvc, _, tokens := newTestAuthService()
	wlSvc := NewWatchlistService(newFakeWatchlistStore())

	registerAlice(t, authSvc)
	loggedIn, err := authSvc.Login(context.Background(), &models.LoginRequest{
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	claims, err := tokens.Verify(loggedIn.AccessToken)
	require.NoError(t, err)
	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	require.NoError(t, err)

	movies, err := wlSvc.Add(context.Background(), userID, "603", "The Matrix", "/poster.jpg")
	require.NoError(t, err)
	require.Len(t, movies, 1)

	movies, err = wlSvc.List(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "603", movies[0].MovieID)
	assert.Equal(t, "The Matrix", movies[0].Title)
	assert.Equal(t, "/poster.jpg", movies[0].Poster)

	_, err = wlSvc.Remove(context.Background(), userID, "603")
	require.NoError(t, err)

	movies, err = wlSvc.List(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, movies)
}
