package data_access

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bjmanish/TheMovieSite/models"
)

type UserRepository struct {
	db         *MongoDB
	collection *mongo.Collection
}

func NewUserRepository(db *MongoDB) *UserRepository {
	return &UserRepository{
		db:         db,
		collection: db.Collection("users"),
	}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	res, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SetRefreshToken overwrites the user's single refresh token slot. Logging
// in from a second device silently invalidates the first session's token.
func (r *UserRepository) SetRefreshToken(ctx context.Context, id primitive.ObjectID, token string) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"refresh_token": token}},
	)
	return err
}

// ClearRefreshToken revokes the user's refresh session.
func (r *UserRepository) ClearRefreshToken(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$unset": bson.M{"refresh_token": 1}},
	)
	return err
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"last_login": at}},
	)
	return err
}

func (r *UserRepository) UpdateUsername(ctx context.Context, id primitive.ObjectID, username string) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"username": username}},
	)
	return err
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, id primitive.ObjectID, avatar string) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"avatar": avatar}},
	)
	return err
}

// SetMobileCode stores an unverified number with a pending verification code.
func (r *UserRepository) SetMobileCode(ctx context.Context, id primitive.ObjectID, mobile *models.Mobile) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"mobile": mobile}},
	)
	return err
}

// MarkMobileVerified flips the verified flag and drops the pending code.
func (r *UserRepository) MarkMobileVerified(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$set":   bson.M{"mobile.verified": true},
			"$unset": bson.M{"mobile.code": 1, "mobile.code_expires_at": 1},
		},
	)
	return err
}
