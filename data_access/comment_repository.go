package data_access

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bjmanish/TheMovieSite/models"
)

type CommentRepository struct {
	db         *MongoDB
	collection *mongo.Collection
}

func NewCommentRepository(db *MongoDB) *CommentRepository {
	return &CommentRepository{
		db:         db,
		collection: db.Collection("comments"),
	}
}

func (r *CommentRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	res, err := r.collection.InsertOne(ctx, comment)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		comment.ID = oid
	}
	return nil
}

// FindByMovie returns a movie's comments, newest first.
func (r *CommentRepository) FindByMovie(ctx context.Context, movieID string) ([]models.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"movie_id": movieID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var comments []models.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
