/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the counting UI

SECURITY NOTE:
  No authentication middleware. The service fronts a single register
  session on a trusted local network.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Session routes
		r.Route("/session", func(r chi.Router) {
			r.Get("/", h.GetSession)
			r.Get("/summary", h.GetSummary)
			r.Put("/counts/{value}", h.SetCount)
			r.Put("/sales", h.SetSales)
			r.Put("/opening-balance", h.SetOpeningBalance)
			r.Post("/adjustments", h.AddAdjustment)
			r.Delete("/adjustments/{id}", h.RemoveAdjustment)
			r.Post("/reset", h.ResetSession)
		})

		// History routes
		r.Route("/history", func(r chi.Router) {
			r.Get("/", h.ListHistory)
			r.Post("/", h.SaveHistory)
			r.Delete("/{id}", h.DeleteHistoryEntry)
			r.Delete("/", h.ClearHistory)
		})
	})

	return r
}
