// internal/app/features/departments/routes.go
package departments

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts all Department routes under the base path
// (typically "/departments" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)
	r.Get("/{id}", h.ServeView)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)

	// Location assignments
	r.Get("/{id}/locations", h.ServeLocationAssignments)
	r.Post("/{id}/locations", h.HandleAssignLocation)
	r.Delete("/{id}/locations/{assignmentID}", h.HandleUnassignLocation)

	// Module assignments
	r.Get("/{id}/modules", h.ServeModuleAssignments)
	r.Post("/{id}/modules", h.HandleAssignModule)
	r.Delete("/{id}/modules/{assignmentID}", h.HandleUnassignModule)

	return r
}
