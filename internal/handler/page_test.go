package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ggmap/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPageService is a mock implementation of the PageService interface
type MockPageService struct {
	mock.Mock
}

func (m *MockPageService) RenderPage(ctx context.Context, html, pageURL string) ([]service.ContainerResult, error) {
	args := m.Called(ctx, html, pageURL)
	results, _ := args.Get(0).([]service.ContainerResult)
	return results, args.Error(1)
}

func TestPageHandler_RenderPage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		mockResults    []service.ContainerResult
		mockError      error
		expectCall     bool
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "missing html",
			body:           `{"url": "https://example.com/"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"missing required field 'html'"}`,
		},
		{
			name:           "rendered",
			body:           `{"html": "<div class=\"gg-map\"></div>", "url": "https://example.com/"}`,
			mockResults:    []service.ContainerResult{{Index: 0, Outcome: "skipped", Error: "bootstrap: map config path not specified"}},
			expectCall:     true,
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"index":0,"outcome":"skipped","error":"bootstrap: map config path not specified"}]`,
		},
		{
			name:           "invalid url",
			body:           `{"html": "<div class=\"gg-map\"></div>", "url": "https://example.com/"}`,
			mockError:      service.ErrInvalidPageURL,
			expectCall:     true,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid page url"}`,
		},
		{
			name:           "service error",
			body:           `{"html": "<div class=\"gg-map\"></div>", "url": "https://example.com/"}`,
			mockError:      assert.AnError,
			expectCall:     true,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockPageService)
			if tt.expectCall {
				mockSvc.On("RenderPage", mock.Anything, `<div class="gg-map"></div>`, "https://example.com/").Return(tt.mockResults, tt.mockError)
			}

			r := gin.New()
			r.POST("/pages/render", NewPageHandler(mockSvc).RenderPage)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/pages/render", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}
