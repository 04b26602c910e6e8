package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bjmanish/TheMovieSite/apperrors"
	"github.com/bjmanish/TheMovieSite/models"
)

const verificationCodeTTL = 10 * time.Minute

// AvatarStorage is the object store holding profile pictures.
type AvatarStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	Download(ctx context.Context, key string) ([]byte, string, error)
}

// CodeSender delivers a mobile verification code to a phone number.
type CodeSender interface {
	SendCode(ctx context.Context, number, code string) error
}

// LogCodeSender writes codes to the server log instead of sending SMS.
type LogCodeSender struct{}

func (LogCodeSender) SendCode(_ context.Context, number, code string) error {
	log.Printf("verification code for %s: %s", number, code)
	return nil
}

type ProfileService struct {
	userStore UserStore
	avatars   AvatarStorage
	sender    CodeSender
}

func NewProfileService(userStore UserStore, avatars AvatarStorage, sender CodeSender) *ProfileService {
	return &ProfileService{
		userStore: userStore,
		avatars:   avatars,
		sender:    sender,
	}
}

// UpdateProfile mutates the user's display name and returns the updated
// public view. Usernames are not unique, so no conflict check applies.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, username string) (*models.PublicUser, error) {
	user, err := s.userStore.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("user not found")
	}

	if err := s.userStore.UpdateUsername(ctx, userID, username); err != nil {
		return nil, fmt.Errorf("updating username: %w", err)
	}

	user.Username = username
	pub := user.Public()
	return &pub, nil
}

// UploadAvatar stores the image and records its object key on the user.
func (s *ProfileService) UploadAvatar(ctx context.Context, userID primitive.ObjectID, data []byte, contentType string) (string, error) {
	if s.avatars == nil {
		return "", apperrors.Internal(fmt.Errorf("avatar storage not configured"))
	}
	if len(data) == 0 {
		return "", apperrors.InvalidInput("empty image")
	}

	var ext string
	switch contentType {
	case "image/png":
		ext = ".png"
	case "image/jpeg":
		ext = ".jpg"
	case "image/webp":
		ext = ".webp"
	default:
		return "", apperrors.InvalidInput("unsupported image type")
	}

	key := "avatars/" + uuid.New().String() + ext
	if err := s.avatars.Upload(ctx, key, data, contentType); err != nil {
		return "", fmt.Errorf("storing avatar: %w", err)
	}

	if err := s.userStore.UpdateAvatar(ctx, userID, key); err != nil {
		return "", fmt.Errorf("saving avatar reference: %w", err)
	}
	return key, nil
}

// GetAvatar returns the user's stored profile picture.
func (s *ProfileService) GetAvatar(ctx context.Context, userID primitive.ObjectID) ([]byte, string, error) {
	if s.avatars == nil {
		return nil, "", apperrors.Internal(fmt.Errorf("avatar storage not configured"))
	}

	user, err := s.userStore.FindByID(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("looking up user: %w", err)
	}
	if user == nil || user.Avatar == "" {
		return nil, "", apperrors.NotFound("no profile picture")
	}

	data, contentType, err := s.avatars.Download(ctx, user.Avatar)
	if err != nil {
		return nil, "", fmt.Errorf("loading avatar: %w", err)
	}
	return data, contentType, nil
}

// RequestMobileVerification stores the number with a fresh pending code and
// hands the code to the sender. Requesting again replaces the pending code.
func (s *ProfileService) RequestMobileVerification(ctx context.Context, userID primitive.ObjectID, number string) error {
	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("generating code: %w", err)
	}

	mobile := &models.Mobile{
		Number:        number,
		Verified:      false,
		Code:          code,
		CodeExpiresAt: time.Now().Add(verificationCodeTTL),
	}

	if err := s.userStore.SetMobileCode(ctx, userID, mobile); err != nil {
		return fmt.Errorf("storing verification code: %w", err)
	}

	return s.sender.SendCode(ctx, number, code)
}

// ConfirmMobileVerification checks the presented code against the pending
// one and marks the number verified.
func (s *ProfileService) ConfirmMobileVerification(ctx context.Context, userID primitive.ObjectID, code string) error {
	user, err := s.userStore.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("looking up user: %w", err)
	}
	if user == nil {
		return apperrors.NotFound("user not found")
	}
	if user.Mobile == nil || user.Mobile.Code == "" {
		return apperrors.InvalidInput("no pending verification")
	}
	if time.Now().After(user.Mobile.CodeExpiresAt) {
		return apperrors.InvalidInput("verification code expired")
	}
	if user.Mobile.Code != code {
		return apperrors.InvalidInput("incorrect verification code")
	}

	return s.userStore.MarkMobileVerified(ctx, userID)
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
