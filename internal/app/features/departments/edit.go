// internal/app/features/departments/edit.go
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
)

type updateRequest struct {
	Name   *string `json:"name"`
	Active *bool   `json:"active"`
}

// HandleUpdate applies a partial update. When nothing substantive
// changes the stored document is returned untouched, original audit
// stamps included.
//
// Route: PUT /departments/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := shared.URLObjectID(r, "id")
	if err != nil {
		apierr.BadRequest(w, "bad department id")
		return
	}

	var req updateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		apierr.BadRequest(w, "invalid request body")
		return
	}

	upd := departmentstore.Update{Active: req.Active}
	if req.Name != nil {
		clean := htmlsanitize.StripTags(*req.Name)
		upd.Name = &clean
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	dep, err := h.Store.Update(ctx, id, upd, shared.Actor(r))
	switch {
	case errors.Is(err, departmentstore.ErrNotFound):
		apierr.NotFound(w, "department not found")
		return
	case errors.Is(err, departmentstore.ErrEmptyName):
		apierr.BadRequest(w, "department name cannot be empty")
		return
	case errors.Is(err, departmentstore.ErrDuplicateDepartmentName):
		apierr.Conflict(w, "a department with this name already exists in the organisation")
		return
	case err != nil:
		apierr.Internal(w, h.Log, "update department", err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, dep)
}
