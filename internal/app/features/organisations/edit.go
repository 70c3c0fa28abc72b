// internal/app/features/organisations/edit.go
package organisations

import (
	"context"
	"errors"
	"net/http"

	apierr "github.com/rotahub/rotahub/internal/app/features/errors"
	"github.com/rotahub/rotahub/internal/app/features/shared"
	organisationstore "github.com/rotahub/rotahub/internal/app/store/organisations"
	"github.com/rotahub/rotahub/internal/app/system/htmlsanitize"
	"github.com/rotahub/rotahub/internal/app/system/timeouts"
)

type updateRequest struct {
	Name         *string `json:"name"`
	ContactEmail *string `json:"contact_email"`
	ContactPhone *string `json:"contact_phone"`
	Active       *bool   `json:"active"`
}

// HandleUpdate applies a partial update to an organisation. Fields
// absent from the body are left untouched.
//
// Route: PUT /organisations/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := shared.URLObjectID(r, "id")
	if err != nil {
		apierr.BadRequest(w, "bad organisation id")
		return
	}

	var req updateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		apierr.BadRequest(w, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	org, err := h.Store.Update(ctx, id, organisationstore.Update{
		Name:         sanitized(req.Name),
		ContactEmail: sanitized(req.ContactEmail),
		ContactPhone: sanitized(req.ContactPhone),
		Active:       req.Active,
	}, shared.Actor(r))
	switch {
	case errors.Is(err, organisationstore.ErrNotFound):
		apierr.NotFound(w, "organisation not found")
		return
	case errors.Is(err, organisationstore.ErrEmptyName):
		apierr.BadRequest(w, "organisation name cannot be empty")
		return
	case err != nil:
		apierr.Internal(w, h.Log, "update organisation", err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, org)
}

func sanitized(s *string) *string {
	if s == nil {
		return nil
	}
	clean := htmlsanitize.StripTags(*s)
	return &clean
}
