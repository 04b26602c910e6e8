package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bjmanish/TheMovieSite/services"
)

type SearchController struct {
	searchService *services.SearchService
}

func NewSearchController(searchService *services.SearchService) *SearchController {
	return &SearchController{
		searchService: searchService,
	}
}

// Search is public; browsing the public domain catalog needs no account.
func (c *SearchController) Search(ctx *gin.Context) {
	rows, err := strconv.Atoi(ctx.DefaultQuery("rows", "10"))
	if err != nil || rows < 1 {
		rows = 10
	}

	body, err := c.searchService.Search(ctx.Request.Context(), ctx.Query("query"), pageParam(ctx), rows)
	if err != nil {
		respondError(ctx, "archive search", err)
		return
	}

	ctx.Data(http.StatusOK, "application/json", body)
}
