package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"

	"ggmap/internal/models"
	"ggmap/internal/renderer"
	"ggmap/internal/scene"
)

var (
	// ErrInvalidSlug is returned for slugs that cannot name a document.
	ErrInvalidSlug = errors.New("service: invalid map slug")
	// ErrMarkerNotFound is returned when no marker with a popup has the id.
	ErrMarkerNotFound = errors.New("service: marker not found")

	slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,254}$`)
)

// MapRepository interface for dependency injection
type MapRepository interface {
	GetMapDocument(ctx context.Context, slug string) (*models.MapDocument, error)
	ListMapDocuments(ctx context.Context) ([]models.MapDocument, error)
}

// MapService contains the business logic around stored map documents
type MapService struct {
	repo     MapRepository
	renderer *renderer.Renderer
}

// NewMapService creates a new map service
func NewMapService(repo MapRepository, r *renderer.Renderer) *MapService {
	return &MapService{repo: repo, renderer: r}
}

// ValidSlug reports whether slug can name a map document.
func ValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

// Document returns the stored document for slug
func (s *MapService) Document(ctx context.Context, slug string) (*models.MapDocument, error) {
	if !ValidSlug(slug) {
		return nil, ErrInvalidSlug
	}

	doc, err := s.repo.GetMapDocument(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get map document: %w", err)
	}

	return doc, nil
}

// List returns all stored documents
func (s *MapService) List(ctx context.Context) ([]models.MapDocument, error) {
	docs, err := s.repo.ListMapDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list map documents: %w", err)
	}
	return docs, nil
}

// Render renders the document for slug as if it were loaded by a container
// with the given data attributes on a page with the given query string
func (s *MapService) Render(ctx context.Context, slug string, ds models.Dataset, query url.Values) (*RenderResult, error) {
	inst, err := s.render(ctx, slug, ds, query)
	if err != nil {
		return nil, err
	}
	return NewRenderResult(inst)
}

// Popup returns the popup HTML of the marker registered under markerID
func (s *MapService) Popup(ctx context.Context, slug, markerID string) (string, error) {
	inst, err := s.render(ctx, slug, models.Dataset{}, nil)
	if err != nil {
		return "", err
	}

	marker, ok := inst.Marker(markerID)
	if !ok || !marker.HasPopup() {
		return "", ErrMarkerNotFound
	}
	sm, ok := marker.(*scene.Marker)
	if !ok {
		return "", fmt.Errorf("service: unexpected marker type %T", marker)
	}
	return sm.Popup, nil
}

func (s *MapService) render(ctx context.Context, slug string, ds models.Dataset, query url.Values) (*renderer.Instance, error) {
	doc, err := s.Document(ctx, slug)
	if err != nil {
		return nil, err
	}

	cfg, err := models.DecodeMapConfig(doc.Body)
	if err != nil {
		return nil, fmt.Errorf("service: map document %q: %w", slug, err)
	}

	if ds.JSON == "" {
		ds.JSON = "/maps/" + slug
	}
	return s.renderer.Render(renderer.Container{ID: "gg-map-" + slug, Dataset: ds}, cfg, query), nil
}
