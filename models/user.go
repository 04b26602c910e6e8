package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	// User information
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username  string             `bson:"username,omitempty" json:"username,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	LastLogin time.Time          `bson:"last_login,omitempty" json:"last_login,omitempty"`

	// Single slot for the live refresh token; empty means no active session
	RefreshToken string `bson:"refresh_token,omitempty" json:"-"`

	// Profile extras
	Avatar string  `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Mobile *Mobile `bson:"mobile,omitempty" json:"mobile,omitempty"`
}

// Mobile holds a user's phone number and the state of its verification.
type Mobile struct {
	Number        string    `bson:"number" json:"number"`
	Verified      bool      `bson:"verified" json:"verified"`
	Code          string    `bson:"code,omitempty" json:"-"`
	CodeExpiresAt time.Time `bson:"code_expires_at,omitempty" json:"-"`
}

// PublicUser is the view of a user returned by the API.
type PublicUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username,omitempty"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Public returns the API view of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID.Hex(),
		Username:  u.Username,
		Email:     u.Email,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
}
