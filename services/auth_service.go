package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/bjmanish/TheMovieSite/apperrors"
	"github.com/bjmanish/TheMovieSite/models"
)

// UserStore is the persistence the auth and profile services need. The
// mongo-backed implementation lives in data_access.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	SetRefreshToken(ctx context.Context, id primitive.ObjectID, token string) error
	ClearRefreshToken(ctx context.Context, id primitive.ObjectID) error
	UpdateLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error
	UpdateUsername(ctx context.Context, id primitive.ObjectID, username string) error
	UpdateAvatar(ctx context.Context, id primitive.ObjectID, avatar string) error
	SetMobileCode(ctx context.Context, id primitive.ObjectID, mobile *models.Mobile) error
	MarkMobileVerified(ctx context.Context, id primitive.ObjectID) error
}

type AuthService struct {
	userStore UserStore
	tokens    *TokenService
}

func NewAuthService(userStore UserStore, tokens *TokenService) *AuthService {
	return &AuthService{
		userStore: userStore,
		tokens:    tokens,
	}
}

// Register creates an account and opens a session: both tokens are issued
// and the refresh token is persisted as the user's single live session slot.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResult, error) {
	existing, err := s.userStore.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("looking up email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("user already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashedPassword),
		CreatedAt: time.Now(),
	}

	if err := s.userStore.CreateUser(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Lost the race against a concurrent registration for the same email.
			return nil, apperrors.Conflict("user already exists")
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return s.openSession(ctx, user)
}

// Login checks credentials and opens a session, overwriting any refresh
// token from a previous login.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResult, error) {
	user, err := s.userStore.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("looking up email: %w", err)
	}
	if user == nil {
		return nil, apperrors.Unauthenticated("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.Unauthenticated("invalid credentials")
	}

	if err := s.userStore.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		return nil, fmt.Errorf("updating last login: %w", err)
	}

	return s.openSession(ctx, user)
}

func (s *AuthService) openSession(ctx context.Context, user *models.User) (*models.AuthResult, error) {
	accessToken, err := s.tokens.IssueAccessToken(user.ID.Hex(), user.Username)
	if err != nil {
		return nil, fmt.Errorf("signing access token: %w", err)
	}

	refreshToken, err := s.tokens.IssueRefreshToken(user.ID.Hex())
	if err != nil {
		return nil, fmt.Errorf("signing refresh token: %w", err)
	}

	if err := s.userStore.SetRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, fmt.Errorf("storing refresh token: %w", err)
	}

	return &models.AuthResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user.Public(),
	}, nil
}

// Refresh exchanges a presented refresh token for a new access token. The
// token must both verify and exactly match the user's stored slot, so a
// logout or a later login invalidates it regardless of signature validity.
// The refresh token is not rotated.
func (s *AuthService) Refresh(ctx context.Context, presented string) (string, error) {
	if presented == "" {
		return "", apperrors.Unauthenticated("no refresh token")
	}

	claims, err := s.tokens.Verify(presented)
	if err != nil {
		return "", err
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return "", apperrors.Unauthenticated("invalid refresh token")
	}

	user, err := s.userStore.FindByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("looking up user: %w", err)
	}
	if user == nil || user.RefreshToken != presented {
		return "", apperrors.Unauthenticated("invalid refresh token")
	}

	return s.tokens.IssueAccessToken(user.ID.Hex(), user.Username)
}

// Logout revokes the presented refresh token's session. It is best-effort:
// an unverifiable token just means there is nothing to revoke.
func (s *AuthService) Logout(ctx context.Context, presented string) error {
	if presented == "" {
		return nil
	}

	claims, err := s.tokens.Verify(presented)
	if err != nil {
		return nil
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil
	}

	return s.userStore.ClearRefreshToken(ctx, userID)
}

// Profile returns the public view of the user.
func (s *AuthService) Profile(ctx context.Context, userID primitive.ObjectID) (*models.PublicUser, error) {
	user, err := s.userStore.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("user not found")
	}
	pub := user.Public()
	return &pub, nil
}
