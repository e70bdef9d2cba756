// Package server exposes simulations over a JSON http api.
package server

import (
	"net/http"

	"github.com/etnz/optimaxx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates and configures the HTTP router
func NewRouter(sim *optimaxx.Simulator, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(Logger)
	r.Use(middleware.Recoverer)
	r.Use(NewCORS(allowedOrigins).Handler)

	h := &handler{sim: sim}
	r.Route("/api", func(r chi.Router) {
		r.Get("/system/health", h.Health)
		r.Get("/instruments", h.Instruments)
		r.Post("/simulate", h.Simulate)
		r.Post("/chart", h.Chart)
	})
	return r
}

// NewCORS creates a new CORS middleware with the given allowed origins
func NewCORS(allowedOrigins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		ExposedHeaders:   []string{"Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}
