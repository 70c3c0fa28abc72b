// internal/app/features/organisations/routes.go
package organisations

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts all Organisation routes under the base path
// (typically "/organisations" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)
	r.Get("/{id}", h.ServeView)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
	r.Get("/{id}/hospital_count", h.ServeHospitalCount)

	// Hospital membership
	r.Get("/{id}/hospitals", h.ServeHospitalAssignments)
	r.Post("/{id}/hospitals", h.HandleAssignHospital)
	r.Delete("/{id}/hospitals/{assignmentID}", h.HandleUnassignHospital)

	return r
}
