package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bjmanish/TheMovieSite/apperrors"
	"github.com/bjmanish/TheMovieSite/models"
)

// fakeCommentStore keeps comments in memory and lists them newest first,
// matching the mongo repository's sort.
type fakeCommentStore struct {
	comments []models.Comment
	calls    int
}

func (f *fakeCommentStore) CreateComment(_ context.Context, comment *models.Comment) error {
	f.calls++
	comment.ID = primitive.NewObjectID()
	f.comments = append(f.comments, *comment)
	return nil
}

func (f *fakeCommentStore) FindByMovie(_ context.Context, movieID string) ([]models.Comment, error) {
	f.calls++
	var out []models.Comment
	for i := len(f.comments) - 1; i >= 0; i-- {
		if f.comments[i].MovieID == movieID {
			out = append(out, f.comments[i])
		}
	}
	return out, nil
}

func newTestCommentService() (*CommentService, *fakeCommentStore, *fakeUserStore) {
	comments := &fakeCommentStore{}
	users := newFakeUserStore()
	return NewCommentService(comments, users), comments, users
}

func TestAddCommentDenormalizesAuthorEmail(t *testing.T) {
	svc, _, users := newTestCommentService()

	user := &models.User{Username: "alice", Email: "a@x.com"}
	require.NoError(t, users.CreateUser(context.Background(), user))

	comment, err := svc.Add(context.Background(), user.ID, &models.AddCommentRequest{
		MovieID: "603",
		Text:    "still holds up",
	})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", comment.UserEmail)
	assert.Equal(t, user.ID, comment.UserID)
	assert.Equal(t, "603", comment.MovieID)
	assert.False(t, comment.CreatedAt.IsZero())
}

func TestAddCommentUnknownUser(t *testing.T) {
	svc, comments, _ := newTestCommentService()

	_, err := svc.Add(context.Background(), primitive.NewObjectID(), &models.AddCommentRequest{
		MovieID: "603",
		Text:    "still holds up",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Zero(t, comments.calls, "no comment is stored for an unknown author")
}

func TestListCommentsNewestFirst(t *testing.T) {
	svc, _, users := newTestCommentService()

	user := &models.User{Username: "alice", Email: "a@x.com"}
	require.NoError(t, users.CreateUser(context.Background(), user))

	for _, text := range []string{"first", "second", "third"} {
		_, err := svc.Add(context.Background(), user.ID, &models.AddCommentRequest{
			MovieID: "603",
			Text:    text,
		})
		require.NoError(t, err)
	}
	_, err := svc.Add(context.Background(), user.ID, &models.AddCommentRequest{
		MovieID: "550",
		Text:    "other movie",
	})
	require.NoError(t, err)

	list, err := svc.ListByMovie(context.Background(), "603")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Text)
	assert.Equal(t, "second", list[1].Text)
	assert.Equal(t, "first", list[2].Text)
}

func TestListCommentsWithoutAnyIsEmpty(t *testing.T) {
	svc, _, _ := newTestCommentService()

	list, err := svc.ListByMovie(context.Background(), "603")
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)
}
