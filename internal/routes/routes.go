package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/mindmosaic/mindmosaic-backend/internal/handlers"
)

func SetupRoutes(r *chi.Mux, h *handlers.Handler) {
	// Auth routes
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)
	r.Post("/auth/logout", h.Logout)
	r.Get("/auth/me", h.Me)

	// Journal routes (bearer session required)
	r.Post("/entries", h.CreateEntry)
	r.Get("/entries", h.ListEntries)
}
