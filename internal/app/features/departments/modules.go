// internal/app/features/departments/modules.go
package departments

import (
	"context"
	"errors"
	"net/http"

	apierr "github.com/rotahub/rotahub/internal/app/features/errors"
	"github.com/rotahub/rotahub/internal/app/features/shared"
	depmoduleassignstore "github.com/rotahub/rotahub/internal/app/store/depmoduleassign"
	"github.com/rotahub/rotahub/internal/app/system/timeouts"
	"github.com/rotahub/rotahub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeModuleAssignments lists a department's module assignments.
//
// Route: GET /departments/{id}/modules
func (h *Handler) ServeModuleAssignments(w http.ResponseWriter, r *http.Request) {
	depID, err := shared.URLObjectID(r, "id")
	if err != nil {
		apierr.BadRequest(w, "bad department id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	assigns, err := h.ModAssigns.ListByDepartment(ctx, depID)
	if err != nil {
		apierr.Internal(w, h.Log, "list module assignments", err)
		return
	}
	if assigns == nil {
		assigns = []models.DepModuleAssignment{}
	}

	shared.WriteJSON(w, http.StatusOK, assigns)
}

type assignModuleRequest struct {
	ModuleID string `json:"module_id"`
}

// HandleAssignModule links a module to a department.
//
// Route: POST /departments/{id}/modules
func (h *Handler) HandleAssignModule(w http.ResponseWriter, r *http.Request) {
	depID, err := shared.URLObjectID(r, "id")
	if err != nil {
		apierr.BadRequest(w, "bad department id")
		return
	}

	var req assignModuleRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		apierr.BadRequest(w, "invalid request body")
		return
	}
	moduleID, err := primitive.ObjectIDFromHex(req.ModuleID)
	if err != nil {
		apierr.BadRequest(w, "module_id must be a valid module id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	a, err := h.ModAssigns.Assign(ctx, depID, moduleID, shared.Actor(r))
	if errors.Is(err, depmoduleassignstore.ErrAlreadyAssigned) {
		apierr.Conflict(w, "module is already assigned to this department")
		return
	}
	if err != nil {
		apierr.Internal(w, h.Log, "assign module", err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, a)
}

// HandleUnassignModule removes one module assignment.
//
// Route: DELETE /departments/{id}/modules/{assignmentID}
func (h *Handler) HandleUnassignModule(w http.ResponseWriter, r *http.Request) {
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

	err = h.ModAssigns.Delete(ctx, assignID)
	if errors.Is(err, depmoduleassignstore.ErrNotFound) {
		apierr.NotFound(w, "module assignment not found")
		return
	}
	if err != nil {
		apierr.Internal(w, h.Log, "unassign module", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
