package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bjmanish/TheMovieSite/apperrors"
	"github.com/bjmanish/TheMovieSite/models"
)

type CommentStore interface {
	CreateComment(ctx context.Context, comment *models.Comment) error
	FindByMovie(ctx context.Context, movieID string) ([]models.Comment, error)
}

type CommentService struct {
	commentStore CommentStore
	userStore    UserStore
}

func NewCommentService(commentStore CommentStore, userStore UserStore) *CommentService {
	return &CommentService{
		commentStore: commentStore,
		userStore:    userStore,
	}
}

// Add creates a comment for the authenticated user, denormalizing the
// author's email onto the document for display.
func (s *CommentService) Add(ctx context.Context, userID primitive.ObjectID, req *models.AddCommentRequest) (*models.Comment, error) {
	user, err := s.userStore.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("user not found")
	}

	comment := &models.Comment{
		MovieID:   req.MovieID,
		UserID:    userID,
		UserEmail: user.Email,
		Text:      req.Text,
		CreatedAt: time.Now(),
	}

	if err := s.commentStore.CreateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}
	return comment, nil
}

// ListByMovie returns a movie's comments, newest first.
func (s *CommentService) ListByMovie(ctx context.Context, movieID string) ([]models.Comment, error) {
	comments, err := s.commentStore.FindByMovie(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("loading comments: %w", err)
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}
