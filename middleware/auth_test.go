package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjmanish/TheMovieSite/services"
)

func setupProtectedRouter(tokens *services.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(tokens), func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		username, _ := c.Get("username")
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "username": username})
	})
	return r
}

func doRequest(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	tokens := services.NewTokenService("test-secret", time.Hour, time.Hour)
	r := setupProtectedRouter(tokens)

	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing token")
}

func TestAuthMiddlewareNonBearerScheme(t *testing.T) {
	tokens := services.NewTokenService("test-secret", time.Hour, time.Hour)
	r := setupProtectedRouter(tokens)

	w := doRequest(r, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing token")
}

func TestAuthMiddlewareGarbageToken(t *testing.T) {
	tokens := services.NewTokenService("test-secret", time.Hour, time.Hour)
	r := setupProtectedRouter(tokens)

	w := doRequest(r, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token")
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	tokens := services.NewTokenService("test-secret", -time.Second, time.Hour)
	r := setupProtectedRouter(tokens)

	token, err := tokens.IssueAccessToken("64f000000000000000000001", "alice")
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token")
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	other := services.NewTokenService("other-secret", time.Hour, time.Hour)
	token, err := other.IssueAccessToken("64f000000000000000000001", "alice")
	require.NoError(t, err)

	tokens := services.NewTokenService("test-secret", time.Hour, time.Hour)
	w := doRequest(setupProtectedRouter(tokens), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// A token that verifies but whose subject is not a usable id must still be
// rejected.
func TestAuthMiddlewareUnresolvableUserID(t *testing.T) {
	tokens := services.NewTokenService("test-secret", time.Hour, time.Hour)
	token, err := tokens.IssueAccessToken("not-an-object-id", "alice")
	require.NoError(t, err)

	w := doRequest(setupProtectedRouter(tokens), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token")
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	tokens := services.NewTokenService("test-secret", time.Hour, time.Hour)
	token, err := tokens.IssueAccessToken("64f000000000000000000001", "alice")
	require.NoError(t, err)

	w := doRequest(setupProtectedRouter(tokens), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "64f000000000000000000001")
	assert.Contains(t, w.Body.String(), "alice")
}
