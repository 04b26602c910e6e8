package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	MovieID   string             `bson:"movie_id" json:"movieId"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	UserEmail string             `bson:"user_email" json:"userEmail"`
	Text      string             `bson:"text" json:"text"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

type AddCommentRequest struct {
	MovieID string `json:"movieId" binding:"required"`
	Text    string `json:"text" binding:"required"`
}
