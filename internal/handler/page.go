package handler

import (
	"context"
	"errors"
	"net/http"

	"ggmap/internal/service"

	"github.com/gin-gonic/gin"
)

// PageHandler handles page bootstrap requests
type PageHandler struct {
	service PageService
}

// Service interface for dependency injection
type PageService interface {
	RenderPage(ctx context.Context, html, pageURL string) ([]service.ContainerResult, error)
}

// NewPageHandler creates a new page handler
func NewPageHandler(svc PageService) *PageHandler {
	return &PageHandler{service: svc}
}

type renderPageRequest struct {
	HTML string `json:"html" binding:"required"`
	URL  string `json:"url"`
}

// RenderPage handles POST /pages/render requests
//
//	@Summary	Render every map container in an HTML page
//	@Accept		json
//	@Produce	json
//	@Success	200	{array}	service.ContainerResult
//	@Router		/pages/render [post]
func (h *PageHandler) RenderPage(c *gin.Context) {
	var req renderPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required field 'html'"})
		return
	}

	results, err := h.service.RenderPage(c.Request.Context(), req.HTML, req.URL)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPageURL) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page url"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, results)
}
