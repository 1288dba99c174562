package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"ggmap/internal/models"
	"ggmap/internal/repository"
	"ggmap/internal/service"

	"github.com/gin-gonic/gin"
)

// MapHandler handles map document requests
type MapHandler struct {
	service MapService
}

// Service interface for dependency injection
type MapService interface {
	Document(ctx context.Context, slug string) (*models.MapDocument, error)
	List(ctx context.Context) ([]models.MapDocument, error)
	Render(ctx context.Context, slug string, ds models.Dataset, query url.Values) (*service.RenderResult, error)
	Popup(ctx context.Context, slug, markerID string) (string, error)
}

// NewMapHandler creates a new map handler
func NewMapHandler(svc MapService) *MapHandler {
	return &MapHandler{service: svc}
}

// List handles GET /maps requests
//
//	@Summary	List map documents
//	@Produce	json
//	@Success	200	{array}	models.MapDocument
//	@Router		/maps [get]
func (h *MapHandler) List(c *gin.Context) {
	docs, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, docs)
}

// Document handles GET /maps/:slug requests. The stored JSON is returned
// verbatim so it can be used as a container's data-json source.
//
//	@Summary	Get a map document
//	@Produce	json
//	@Param		slug	path	string	true	"map slug"
//	@Router		/maps/{slug} [get]
func (h *MapHandler) Document(c *gin.Context) {
	doc, err := h.service.Document(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "application/json; charset=utf-8", doc.Body)
}

// Render handles GET /maps/:slug/render requests. Query parameters stand in
// for the container's data attributes and carry the deep-link parameter.
//
//	@Summary	Render a map document
//	@Produce	json
//	@Param		slug		path	string	true	"map slug"
//	@Param		filters		query	string	false	"on enables the filter panel"
//	@Param		openIdParam	query	string	false	"deep-link parameter name"
//	@Success	200	{object}	service.RenderResult
//	@Router		/maps/{slug}/render [get]
func (h *MapHandler) Render(c *gin.Context) {
	query := c.Request.URL.Query()
	ds := models.DatasetFromAttributes(query.Get)

	result, err := h.service.Render(c.Request.Context(), c.Param("slug"), ds, query)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Popup handles GET /maps/:slug/markers/:id/popup requests
//
//	@Summary	Get a marker's popup HTML
//	@Produce	html
//	@Param		slug	path	string	true	"map slug"
//	@Param		id		path	string	true	"marker id"
//	@Router		/maps/{slug}/markers/{id}/popup [get]
func (h *MapHandler) Popup(c *gin.Context) {
	html, err := h.service.Popup(c.Request.Context(), c.Param("slug"), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidSlug):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid map slug"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "map not found"})
	case errors.Is(err, service.ErrMarkerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "marker not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
