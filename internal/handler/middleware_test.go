package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
)

type MockRequestObserver struct {
	mock.Mock
}

func (m *MockRequestObserver) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.Called(method, path, status, duration)
}

func TestObserve(t *testing.T) {
	gin.SetMode(gin.TestMode)

	obs := new(MockRequestObserver)
	obs.On("ObserveHTTPRequest", http.MethodGet, "/maps/:slug", http.StatusTeapot, mock.AnythingOfType("time.Duration")).Once()
	obs.On("ObserveHTTPRequest", http.MethodGet, "unmatched", http.StatusNotFound, mock.AnythingOfType("time.Duration")).Once()

	r := gin.New()
	r.Use(Observe(zerolog.Nop(), obs))
	r.GET("/maps/:slug", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/maps/town", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nothing", nil))

	obs.AssertExpectations(t)
}
