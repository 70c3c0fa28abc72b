// internal/app/features/organisations/hospitals.go
package organisations

import (
	"context"
	"errors"
	"net/http"

	apierr "github.com/rotahub/rotahub/internal/app/features/errors"
	"github.com/rotahub/rotahub/internal/app/features/shared"
	hosporgassignstore "github.com/rotahub/rotahub/internal/app/store/hosporgassign"
	organisationstore "github.com/rotahub/rotahub/internal/app/store/organisations"
	"github.com/rotahub/rotahub/internal/app/system/timeouts"
	"github.com/rotahub/rotahub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeHospitalAssignments lists the hospitals linked to an
// organisation, as assignment records.
//
// Route: GET /organisations/{id}/hospitals
func (h *Handler) ServeHospitalAssignments(w http.ResponseWriter, r *http.Request) {
	orgID, err := shared.URLObjectID(r, "id")
	if err != nil {
		apierr.BadRequest(w, "bad organisation id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	assigns, err := h.HospAssigns.ListByOrganisation(ctx, orgID)
	if err != nil {
		apierr.Internal(w, h.Log, "list hospital assignments", err)
		return
	}
	if assigns == nil {
		assigns = []models.HospitalOrgAssignment{}
	}

	shared.WriteJSON(w, http.StatusOK, assigns)
}

type assignHospitalRequest struct {
	HospitalID string `json:"hospital_id"`
}

// HandleAssignHospital links a hospital to an organisation. The
// organisation must exist; linking the same hospital twice is a 409.
//
// Route: POST /organisations/{id}/hospitals
func (h *Handler) HandleAssignHospital(w http.ResponseWriter, r *http.Request) {
	orgID, err := shared.URLObjectID(r, "id")
	if err != nil {
		apierr.BadRequest(w, "bad organisation id")
		return
	}

	var req assignHospitalRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		apierr.BadRequest(w, "invalid request body")
		return
	}
	hospID, err := primitive.ObjectIDFromHex(req.HospitalID)
	if err != nil {
		apierr.BadRequest(w, "hospital_id must be a valid hospital id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Store.GetByID(ctx, orgID); err != nil {
		if errors.Is(err, organisationstore.ErrNotFound) {
			apierr.NotFound(w, "organisation not found")
			return
		}
		apierr.Internal(w, h.Log, "load organisation", err)
		return
	}

	a, err := h.HospAssigns.Assign(ctx, hospID, orgID, shared.Actor(r))
	if errors.Is(err, hosporgassignstore.ErrAlreadyAssigned) {
		apierr.Conflict(w, "hospital is already assigned to this organisation")
		return
	}
	if err != nil {
		apierr.Internal(w, h.Log, "assign hospital", err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, a)
}

// HandleUnassignHospital removes one hospital assignment.
//
// Route: DELETE /organisations/{id}/hospitals/{assignmentID}
func (h *Handler) HandleUnassignHospital(w http.ResponseWriter, r *http.Request) {
	if _, err := shared.URLObjectID(r, "id"); err != nil {
		apierr.BadRequest(w, "bad organisation id")
		return
	}
	assignID, err := shared.URLObjectID(r, "assignmentID")
	if err != nil {
		apierr.BadRequest(w, "bad assignment id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.HospAssigns.Delete(ctx, assignID)
	if errors.Is(err, hosporgassignstore.ErrNotFound) {
		apierr.NotFound(w, "hospital assignment not found")
		return
	}
	if err != nil {
		apierr.Internal(w, h.Log, "unassign hospital", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
