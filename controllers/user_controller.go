package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bjmanish/TheMovieSite/models"
	"github.com/bjmanish/TheMovieSite/services"
)

// maxAvatarSize bounds profile picture uploads to 5MB.
const maxAvatarSize = 5 << 20

type UserController struct {
	authService    *services.AuthService
	profileService *services.ProfileService
}

func NewUserController(authService *services.AuthService, profileService *services.ProfileService) *UserController {
	return &UserController{
		authService:    authService,
		profileService: profileService,
	}
}

func (c *UserController) Me(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	user, err := c.authService.Profile(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, "get profile", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func (c *UserController) UpdateMe(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Username must be at least 3 characters long"})
		return
	}

	user, err := c.profileService.UpdateProfile(ctx.Request.Context(), userID, req.Username)
	if err != nil {
		respondError(ctx, "update profile", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// UploadAvatar accepts a multipart form with an "avatar" file field.
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("avatar")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "avatar file is required"})
		return
	}
	if fileHeader.Size > maxAvatarSize {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "image too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(ctx, "avatar upload", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxAvatarSize))
	if err != nil {
		respondError(ctx, "avatar upload", err)
		return
	}

	path, err := c.profileService.UploadAvatar(ctx.Request.Context(), userID, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		respondError(ctx, "avatar upload", err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"success": true, "avatar": path})
}

func (c *UserController) GetAvatar(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	data, contentType, err := c.profileService.GetAvatar(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, "get avatar", err)
		return
	}

	ctx.Data(http.StatusOK, contentType, data)
}

func (c *UserController) RequestMobileVerification(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req models.MobileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "number is required"})
		return
	}

	if err := c.profileService.RequestMobileVerification(ctx.Request.Context(), userID, req.Number); err != nil {
		respondError(ctx, "request mobile verification", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Verification code sent"})
}

func (c *UserController) ConfirmMobileVerification(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req models.VerifyMobileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "code is required"})
		return
	}

	if err := c.profileService.ConfirmMobileVerification(ctx.Request.Context(), userID, req.Code); err != nil {
		respondError(ctx, "confirm mobile verification", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Mobile number verified"})
}
