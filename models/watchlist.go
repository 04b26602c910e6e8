package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WatchlistEntry is one saved movie. Title and poster are denormalized
// snapshots supplied by the client at add time; the server never re-fetches
// them from the metadata provider.
type WatchlistEntry struct {
	MovieID string    `bson:"movie_id" json:"movieId"`
	Title   string    `bson:"title,omitempty" json:"title,omitempty"`
	Poster  string    `bson:"poster,omitempty" json:"poster,omitempty"`
	AddedAt time.Time `bson:"added_at" json:"addedAt"`
}

// Watchlist is the single per-user collection of saved movies. The user
// field carries a unique index, so at most one document exists per owner.
type Watchlist struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Movies    []WatchlistEntry   `bson:"movies" json:"movies"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

type AddWatchlistRequest struct {
	MovieID string `json:"movieId" binding:"required"`
	Title   string `json:"title"`
	Poster  string `json:"poster"`
}
