package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bjmanish/TheMovieSite/models"
	"github.com/bjmanish/TheMovieSite/services"
)

type CommentController struct {
	commentService *services.CommentService
}

func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{
		commentService: commentService,
	}
}

func (c *CommentController) Add(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req models.AddCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "movieId and text are required"})
		return
	}

	comment, err := c.commentService.Add(ctx.Request.Context(), userID, &req)
	if err != nil {
		respondError(ctx, "add comment", err)
		return
	}

	ctx.JSON(http.StatusCreated, comment)
}

// ListByMovie is public; reading comments needs no account.
func (c *CommentController) ListByMovie(ctx *gin.Context) {
	comments, err := c.commentService.ListByMovie(ctx.Request.Context(), ctx.Param("movieId"))
	if err != nil {
		respondError(ctx, "list comments", err)
		return
	}

	ctx.JSON(http.StatusOK, comments)
}
