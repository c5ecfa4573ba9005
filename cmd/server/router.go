package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/exambooster/studypack-api/internal/api"
	apiMiddleware "github.com/exambooster/studypack-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	handler := api.NewStudyPackHandler(app.studyPackService, app.limiter, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/study-packs", handler.Generate)
	})

	r.Get("/health", handler.Health)

	return r
}
