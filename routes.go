package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/blogem/config-store/controllers"
	"github.com/blogem/config-store/metrics"
	identity "github.com/blogem/config-store/middleware"
)

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, m *metrics.Metrics, requestTimeout time.Duration) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(identity.ClientContext)

	// PUBLIC ROUTES (no caller identity required)
	r.Get("/health", ctrl.Health.Index)
	if m != nil {
		r.Handle("/metrics", m.Handler())
	}
	r.Get("/categories", ctrl.Catalog.Categories)
	r.Post("/validate", ctrl.Catalog.Validate)

	// PROTECTED ROUTES (caller identity required)
	r.Group(func(r chi.Router) {
		r.Use(identity.RequireCaller)

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", ctrl.Settings.List)
			r.Post("/", ctrl.Settings.Create)
			r.Get("/{category}/{key}", ctrl.Settings.Get)
		})

		r.Route("/entries/{id}", func(r chi.Router) {
			r.Patch("/", ctrl.Settings.Update)
			r.Delete("/", ctrl.Settings.Delete)
			r.Get("/audit", ctrl.Audit.Entry)
		})

		r.Route("/audit", func(r chi.Router) {
			r.Get("/", ctrl.Audit.Index)
			r.Get("/verify", ctrl.Audit.Verify)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"route not found"}`))
	})

	return r
}
