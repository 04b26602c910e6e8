package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bjmanish/TheMovieSite/models"
	"github.com/bjmanish/TheMovieSite/services"
)

type WatchlistController struct {
	watchlistService *services.WatchlistService
}

func NewWatchlistController(watchlistService *services.WatchlistService) *WatchlistController {
	return &WatchlistController{
		watchlistService: watchlistService,
	}
}

func (c *WatchlistController) Add(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req models.AddWatchlistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "movieId is required"})
		return
	}

	movies, err := c.watchlistService.Add(ctx.Request.Context(), userID, req.MovieID, req.Title, req.Poster)
	if err != nil {
		respondError(ctx, "watchlist add", err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Movie added to watchlist",
		"data":    movies,
	})
}

func (c *WatchlistController) List(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	movies, err := c.watchlistService.List(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, "watchlist list", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": movies})
}

func (c *WatchlistController) Remove(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	movies, err := c.watchlistService.Remove(ctx.Request.Context(), userID, ctx.Param("movieId"))
	if err != nil {
		respondError(ctx, "watchlist remove", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Movie removed from watchlist",
		"data":    movies,
	})
}
