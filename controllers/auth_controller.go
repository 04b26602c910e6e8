package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/bjmanish/TheMovieSite/models"
	"github.com/bjmanish/TheMovieSite/services"
)

const refreshCookieName = "refresh_token"

type AuthController struct {
	authService  *services.AuthService
	refreshTTL   time.Duration
	secureCookie bool
}

func NewAuthController(authService *services.AuthService, refreshTTL time.Duration, secureCookie bool) *AuthController {
	return &AuthController{
		authService:  authService,
		refreshTTL:   refreshTTL,
		secureCookie: secureCookie,
	}
}

func bindingMessage(err error) string {
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, e := range ve {
			switch e.Field() {
			case "Username":
				return "Username must be at least 3 characters long"
			case "Email":
				return "Please provide a valid email address"
			case "Password":
				if e.Tag() == "min" {
					return "Password must be at least 6 characters long"
				}
				return "Password is required"
			default:
				return "Invalid input data"
			}
		}
	}
	return "Invalid request format"
}

func (c *AuthController) setRefreshCookie(ctx *gin.Context, token string) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(refreshCookieName, token, int(c.refreshTTL.Seconds()), "/", "", c.secureCookie, true)
}

func (c *AuthController) Register(ctx *gin.Context) {
	var req models.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": bindingMessage(err)})
		return
	}

	result, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, "register", err)
		return
	}

	c.setRefreshCookie(ctx, result.RefreshToken)
	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"token":   result.AccessToken,
		"user":    result.User,
	})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": bindingMessage(err)})
		return
	}

	result, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, "login", err)
		return
	}

	c.setRefreshCookie(ctx, result.RefreshToken)
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   result.AccessToken,
		"user":    result.User,
	})
}

// Refresh accepts the refresh token from the httpOnly cookie or, as a
// fallback, the request body.
func (c *AuthController) Refresh(ctx *gin.Context) {
	presented, _ := ctx.Cookie(refreshCookieName)
	if presented == "" {
		var req models.RefreshRequest
		if err := ctx.ShouldBindJSON(&req); err == nil {
			presented = req.RefreshToken
		}
	}

	token, err := c.authService.Refresh(ctx.Request.Context(), presented)
	if err != nil {
		respondError(ctx, "refresh", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

func (c *AuthController) Logout(ctx *gin.Context) {
	presented, _ := ctx.Cookie(refreshCookieName)
	if err := c.authService.Logout(ctx.Request.Context(), presented); err != nil {
		respondError(ctx, "logout", err)
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(refreshCookieName, "", -1, "/", "", c.secureCookie, true)
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}

func (c *AuthController) Profile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	user, err := c.authService.Profile(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, "profile", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// Verify reports the identity attached by the auth middleware; reaching it
// at all means the token was accepted.
func (c *AuthController) Verify(ctx *gin.Context) {
	userID, _ := ctx.Get("user_id")
	username, _ := ctx.Get("username")
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Token is valid",
		"user":    gin.H{"id": userID, "username": username},
	})
}
