// internal/app/features/departments/new.go
package departments

import (
	"context"
	"errors"
	"net/http"

	apierr "github.com/rotahub/rotahub/internal/app/features/errors"
	"github.com/rotahub/rotahub/internal/app/features/shared"
	departmentstore "github.com/rotahub/rotahub/internal/app/store/departments"
	"github.com/rotahub/rotahub/internal/app/system/htmlsanitize"
	"github.com/rotahub/rotahub/internal/app/system/timeouts"
	"github.com/rotahub/rotahub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type createRequest struct {
	Name   string `json:"name"`
	OrgID  string `json:"org_id"`
	Active bool   `json:"active"`
}

// HandleCreate creates a department inside an organisation.
//
// Route: POST /departments
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		apierr.BadRequest(w, "invalid request body")
		return
	}

	orgID, err := primitive.ObjectIDFromHex(req.OrgID)
	if err != nil {
		apierr.BadRequest(w, "org_id must be a valid organisation id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	dep, err := h.Store.Create(ctx, models.Department{
		Name:   htmlsanitize.StripTags(req.Name),
		OrgID:  orgID,
		Active: req.Active,
	}, shared.Actor(r))
	switch {
	case errors.Is(err, departmentstore.ErrOrgRequired):
		apierr.BadRequest(w, "org_id must be a valid organisation id")
		return
	case errors.Is(err, departmentstore.ErrEmptyName):
		apierr.BadRequest(w, "department name cannot be empty")
		return
	case errors.Is(err, departmentstore.ErrDuplicateDepartmentName):
		apierr.Conflict(w, "a department with this name already exists in the organisation")
		return
	case err != nil:
		apierr.Internal(w, h.Log, "create department", err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, dep)
}
