// internal/app/features/modules/routes.go
package modules

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts all module routes under the base path
// (typically "/modules" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)
	r.Get("/{id}", h.ServeView)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)

	return r
}
