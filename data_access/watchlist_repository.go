package data_access

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bjmanish/TheMovieSite/apperrors"
	"github.com/bjmanish/TheMovieSite/models"
)

type WatchlistRepository struct {
	db         *MongoDB
	collection *mongo.Collection
}

func NewWatchlistRepository(db *MongoDB) *WatchlistRepository {
	return &WatchlistRepository{
		db:         db,
		collection: db.Collection("watchlists"),
	}
}

// PushMovie appends the entry to the owner's watchlist as a single
// conditional update: the filter only matches a document that does not
// already contain the movie, and the upsert creates the watchlist on first
// use. When two first-time adds upsert at once the loser trips the unique
// index on the user field; the watchlist exists by then, so the update is
// retried once without upsert before concluding the movie is a duplicate.
func (r *WatchlistRepository) PushMovie(ctx context.Context, userID primitive.ObjectID, entry models.WatchlistEntry) error {
	now := time.Now()
	filter := bson.M{
		"user":            userID,
		"movies.movie_id": bson.M{"$ne": entry.MovieID},
	}
	update := bson.M{
		"$push":        bson.M{"movies": entry},
		"$set":         bson.M{"updated_at": now},
		"$setOnInsert": bson.M{"created_at": now},
	}

	res, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		if !mongo.IsDuplicateKeyError(err) {
			return err
		}
		res, err = r.collection.UpdateOne(ctx, filter, update)
		if err != nil {
			return err
		}
	}

	if res.MatchedCount == 0 && res.UpsertedCount == 0 {
		return apperrors.Conflict("movie already in watchlist")
	}
	return nil
}

// PullMovie removes the entry matching movieID from the owner's watchlist.
// The filter requires the entry to be present, so a missing watchlist and a
// missing entry both surface as NotFound from a single update call.
func (r *WatchlistRepository) PullMovie(ctx context.Context, userID primitive.ObjectID, movieID string) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"user": userID, "movies.movie_id": movieID},
		bson.M{
			"$pull": bson.M{"movies": bson.M{"movie_id": movieID}},
			"$set":  bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperrors.NotFound("movie not in watchlist")
	}
	return nil
}

// FindByUser returns the owner's watchlist, or nil if none exists yet.
func (r *WatchlistRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Watchlist, error) {
	var watchlist models.Watchlist
	err := r.collection.FindOne(ctx, bson.M{"user": userID}).Decode(&watchlist)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &watchlist, nil
}
