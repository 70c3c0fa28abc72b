// internal/app/features/depteams/routes.go
package depteams

import (
	"github.com/go-chi/chi/v5"
)

// DepartmentRoutes returns the routes mounted under
// /departments/{depID}/teams: listing and creating teams inside one
// department.
func DepartmentRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)
	return r
}

// Routes returns the routes mounted under /teams: operations on one
// team by id.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{id}", h.ServeView)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)

	// Team-level location assignments
	r.Get("/{id}/locations", h.ServeLocationAssignments)
	r.Post("/{id}/locations", h.HandleAssignLocation)
	r.Delete("/{id}/locations/{assignmentID}", h.HandleUnassignLocation)

	return r
}
