// internal/app/features/departments/locations.go
package departments

import (
	"context"
	"errors"
	"net/http"

	apierr "github.com/rotahub/rotahub/internal/app/features/errors"
	"github.com/rotahub/rotahub/internal/app/features/shared"
	deplocassignstore "github.com/rotahub/rotahub/internal/app/store/deplocassign"
	"github.com/rotahub/rotahub/internal/app/system/timeouts"
	"github.com/rotahub/rotahub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeLocationAssignments lists a department's direct location
// assignments.
//
// Route: GET /departments/{id}/locations
func (h *Handler) ServeLocationAssignments(w http.ResponseWriter, r *http.Request) {
	depID, err := shared.URLObjectID(r, "id")
	if err != nil {
		apierr.BadRequest(w, "bad department id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	assigns, err := h.LocAssigns.ListByDepartment(ctx, depID)
	if err != nil {
		apierr.Internal(w, h.Log, "list location assignments", err)
		return
	}
	if assigns == nil {
		assigns = []models.DepHospLocAssignment{}
	}

	shared.WriteJSON(w, http.StatusOK, assigns)
}

type assignLocationRequest struct {
	LocationID string `json:"location_id"`
}

// HandleAssignLocation links a location to a department.
//
// Route: POST /departments/{id}/locations
func (h *Handler) HandleAssignLocation(w http.ResponseWriter, r *http.Request) {
	depID, err := shared.URLObjectID(r, "id")
	if err != nil {
		apierr.BadRequest(w, "bad department id")
		return
	}

	var req assignLocationRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		apierr.BadRequest(w, "invalid request body")
		return
	}
	locID, err := primitive.ObjectIDFromHex(req.LocationID)
	if err != nil {
		apierr.BadRequest(w, "location_id must be a valid location id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	a, err := h.LocAssigns.Assign(ctx, depID, locID, shared.Actor(r))
	if errors.Is(err, deplocassignstore.ErrAlreadyAssigned) {
		apierr.Conflict(w, "location is already assigned to this department")
		return
	}
	if err != nil {
		apierr.Internal(w, h.Log, "assign location", err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, a)
}

// HandleUnassignLocation removes one location assignment.
//
// Route: DELETE /departments/{id}/locations/{assignmentID}
func (h *Handler) HandleUnassignLocation(w http.ResponseWriter, r *http.Request) {
	if _, err := shared.URLObjectID(r, "id"); err != nil {
		apierr.BadRequest(w, "bad department id")
		return
	}
	assignID, err := shared.URLObjectID(r, "assignmentID")
	if err != nil {
		apierr.BadRequest(w, "bad assignment id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.LocAssigns.Delete(ctx, assignID)
	if errors.Is(err, deplocassignstore.ErrNotFound) {
		apierr.NotFound(w, "location assignment not found")
		return
	}
	if err != nil {
		apierr.Internal(w, h.Log, "unassign location", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
