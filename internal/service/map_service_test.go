package service

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"ggmap/internal/models"
	"ggmap/internal/renderer"
	"ggmap/internal/repository"
	"ggmap/internal/scene"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMapRepository is a mock implementation of the MapRepository interface
type MockMapRepository struct {
	mock.Mock
}

// GetMapDocument implements MapRepository.
func (m *MockMapRepository) GetMapDocument(ctx context.Context, slug string) (*models.MapDocument, error) {
	args := m.Called(ctx, slug)
	doc, _ := args.Get(0).(*models.MapDocument)
	return doc, args.Error(1)
}

// ListMapDocuments implements MapRepository.
func (m *MockMapRepository) ListMapDocuments(ctx context.Context) ([]models.MapDocument, error) {
	args := m.Called(ctx)
	docs, _ := args.Get(0).([]models.MapDocument)
	return docs, args.Error(1)
}

const townBody = `{
	"map": {"view": {"center": [35.68, 139.76], "zoom": 12}, "layer": {"url": "https://tiles/{z}/{x}/{y}.png"}},
	"categories": [
		{"id": "food", "name": "Food", "markers": [
			{"id": "42", "coords": [35.68, 139.76], "title": "Ramen <Shop>"},
			{"id": "silent", "coords": [35.69, 139.77], "popup": false}
		]},
		{"id": "parks", "visible": false, "markers": [{"coords": [35.7, 139.7]}]}
	]
}`

func newTestMapService(repo MapRepository) *MapService {
	return NewMapService(repo, renderer.New(scene.New(), renderer.Options{}, zerolog.Nop()))
}

func TestMapService_Document(t *testing.T) {
	doc := &models.MapDocument{Slug: "town", Title: "Town", Body: []byte(townBody)}

	tests := []struct {
		name        string
		slug        string
		mockDoc     *models.MapDocument
		mockError   error
		expected    *models.MapDocument
		expectError error
	}{
		{
			name:        "invalid slug",
			slug:        "../etc",
			expectError: ErrInvalidSlug,
		},
		{
			name:     "found",
			slug:     "town",
			mockDoc:  doc,
			expected: doc,
		},
		{
			name:        "not found",
			slug:        "nowhere",
			mockError:   repository.ErrNotFound,
			expectError: repository.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockMapRepository)
			service := newTestMapService(mockRepo)

			if ValidSlug(tt.slug) {
				mockRepo.On("GetMapDocument", mock.Anything, tt.slug).Return(tt.mockDoc, tt.mockError)
			}

			result, err := service.Document(context.Background(), tt.slug)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestMapService_List(t *testing.T) {
	mockRepo := new(MockMapRepository)
	service := newTestMapService(mockRepo)
	docs := []models.MapDocument{{Slug: "a"}, {Slug: "b"}}
	mockRepo.On("ListMapDocuments", mock.Anything).Return(docs, nil)

	result, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, docs, result)
}

func TestMapService_Render(t *testing.T) {
	mockRepo := new(MockMapRepository)
	service := newTestMapService(mockRepo)
	mockRepo.On("GetMapDocument", mock.Anything, "town").Return(&models.MapDocument{Slug: "town", Body: []byte(townBody)}, nil)

	query := url.Values{"id": {"42"}}
	result, err := service.Render(context.Background(), "town", models.Dataset{Filters: "on"}, query)
	require.NoError(t, err)

	assert.Equal(t, "gg-map-town", result.ContainerID)
	assert.Equal(t, "42", result.OpenedMarkerID)
	require.Len(t, result.Categories, 2)
	assert.False(t, result.Categories[1].Visible)

	require.NotNil(t, result.Map)
	require.Len(t, result.Map.Layers, 2)
	assert.Equal(t, scene.KindTile, result.Map.Layers[0].Kind)
	assert.Equal(t, scene.KindGroup, result.Map.Layers[1].Kind)
	require.Len(t, result.Map.Layers[1].Markers, 2)
	assert.True(t, result.Map.Layers[1].Markers[0].PopupOpen)
	assert.Contains(t, result.Map.Layers[1].Markers[0].Popup, "Ramen &lt;Shop&gt;")

	require.NotNil(t, result.Filters)
	assert.True(t, strings.Contains(result.FiltersHTML, `id="gg-map-town-filter-parks"`))
}

func TestMapService_Render_BadDocument(t *testing.T) {
	mockRepo := new(MockMapRepository)
	service := newTestMapService(mockRepo)
	mockRepo.On("GetMapDocument", mock.Anything, "broken").Return(&models.MapDocument{Slug: "broken", Body: []byte(`{"categories": 5`)}, nil)

	_, err := service.Render(context.Background(), "broken", models.Dataset{}, nil)
	assert.Error(t, err)
}

func TestMapService_Popup(t *testing.T) {
	tests := []struct {
		name        string
		markerID    string
		expected    string
		expectError error
	}{
		{
			name:     "marker with popup",
			markerID: "42",
			expected: `<article class="gg-map__popup"><h3 class="gg-map__popup-title">Ramen &lt;Shop&gt;</h3></article>`,
		},
		{
			name:        "popup disabled",
			markerID:    "silent",
			expectError: ErrMarkerNotFound,
		},
		{
			name:        "unknown marker",
			markerID:    "99",
			expectError: ErrMarkerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockMapRepository)
			service := newTestMapService(mockRepo)
			mockRepo.On("GetMapDocument", mock.Anything, "town").Return(&models.MapDocument{Slug: "town", Body: []byte(townBody)}, nil)

			result, err := service.Popup(context.Background(), "town", tt.markerID)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}
