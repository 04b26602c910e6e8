package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bjmanish/TheMovieSite/apperrors"
)

// respondError maps a service failure to its HTTP status. Anything that
// falls through to a 500 is logged with the acting user and operation, and
// the response carries only a generic message.
func respondError(ctx *gin.Context, operation string, err error) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		userID, _ := ctx.Get("user_id")
		log.Printf("%s failed (user=%v): %v", operation, userID, err)
	}
	ctx.JSON(status, gin.H{"success": false, "error": apperrors.Message(err)})
}

// currentUserID pulls the identity set by the auth middleware. Returns
// false after writing the response when the identity is unusable.
func currentUserID(ctx *gin.Context) (primitive.ObjectID, bool) {
	userID, exists := ctx.Get("user_id")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "missing token"})
		return primitive.NilObjectID, false
	}

	userIDStr, ok := userID.(string)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "invalid user ID format"})
		return primitive.NilObjectID, false
	}

	objID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "invalid user ID format"})
		return primitive.NilObjectID, false
	}

	return objID, true
}
