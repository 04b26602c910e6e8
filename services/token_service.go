package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bjmanish/TheMovieSite/apperrors"
)

// Claims are the JWT claims carried by both token kinds. Refresh tokens
// omit the username.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username,omitempty"`
}

// TokenService issues and verifies the signed, time-limited tokens that
// represent a user identity. Verification is stateless; revocation of the
// long-lived session happens through the refresh token slot on the user
// record, which the auth service owns.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssueAccessToken signs a short-lived token carrying the user id and
// username.
func (s *TokenService) IssueAccessToken(userID, username string) (string, error) {
	return s.sign(userID, username, s.accessTTL)
}

// IssueRefreshToken signs a long-lived token carrying only the user id.
// The caller must persist it on the user record to make it redeemable.
func (s *TokenService) IssueRefreshToken(userID string) (string, error) {
	return s.sign(userID, "", s.refreshTTL)
}

func (s *TokenService) sign(userID, username string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:   userID,
		Username: username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses the token and returns its claims. A bad signature, expired
// claim, malformed payload or missing user id all fail as Unauthenticated;
// "no token at all" is the middleware's distinction, not this one's.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.Unauthenticated("invalid token")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, apperrors.Unauthenticated("invalid or expired token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.Unauthenticated("invalid or expired token")
	}
	if claims.UserID == "" {
		// Validly signed but useless, reject it all the same.
		return nil, apperrors.Unauthenticated("invalid or expired token")
	}

	return claims, nil
}

// RefreshTTL reports the refresh token lifetime, used for the cookie max-age.
func (s *TokenService) RefreshTTL() time.Duration {
	return s.refreshTTL
}
