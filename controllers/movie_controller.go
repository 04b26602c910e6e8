package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bjmanish/TheMovieSite/services"
)

type MovieController struct {
	movieService *services.MovieService
}

func NewMovieController(movieService *services.MovieService) *MovieController {
	return &MovieController{
		movieService: movieService,
	}
}

func pageParam(ctx *gin.Context) int {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func (c *MovieController) Search(ctx *gin.Context) {
	body, err := c.movieService.Search(ctx.Request.Context(), ctx.Query("query"), pageParam(ctx))
	if err != nil {
		respondError(ctx, "movie search", err)
		return
	}

	ctx.Data(http.StatusOK, "application/json", body)
}

func (c *MovieController) Popular(ctx *gin.Context) {
	body, err := c.movieService.Popular(ctx.Request.Context(), pageParam(ctx))
	if err != nil {
		respondError(ctx, "popular movies", err)
		return
	}

	ctx.Data(http.StatusOK, "application/json", body)
}
