package main

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/exambooster/studypack-api/internal/cache"
	"github.com/exambooster/studypack-api/internal/config"
	"github.com/exambooster/studypack-api/internal/generation"
	"github.com/exambooster/studypack-api/internal/ratelimit"
	"github.com/exambooster/studypack-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApplication(t *testing.T) *application {
	t.Helper()
	svc := service.NewStudyPackService(
		cache.New(30*time.Minute, 0),
		nil,
		generation.NewTemplateGenerator(),
		slog.Default(),
	)
	return &application{
		config: &config.Config{
			Server: config.ServerConfig{Port: 8080, LogLevel: "info"},
		},
		logger:           slog.Default(),
		limiter:          ratelimit.NewLimiter(time.Minute, 20),
		studyPackService: svc,
	}
}

func TestRouterHealth(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestRouterGenerateRoute(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/study-packs",
		strings.NewReader(`{"topic":"Photosynthesis","classLevel":"7","language":"English"}`))
	req.RemoteAddr = "192.0.2.1:1234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Photosynthesis is explained here in simple English for Class 7 students.")
}

func TestRouterMethodNotAllowed(t *testing.T) {
	router := newTestApplication(t).setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/study-packs", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
