// internal/app/features/rota/routes.go
package rota

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts all rota routes under the base path
// (typically "/rota" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeWeek)
	r.Post("/", h.HandleCreate)
	r.Get("/export", h.ServeExport)
	r.Get("/{id}", h.ServeView)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)

	return r
}
