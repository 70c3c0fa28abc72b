// internal/app/features/organisations/new.go
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
	"github.com/rotahub/rotahub/internal/domain/models"
)

type createRequest struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Active       bool   `json:"active"`
}

// HandleCreate creates an organisation.
//
// Route: POST /organisations
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		apierr.BadRequest(w, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	org, err := h.Store.Create(ctx, models.Organisation{
		Name:         htmlsanitize.StripTags(req.Name),
		ContactEmail: htmlsanitize.StripTags(req.ContactEmail),
		ContactPhone: htmlsanitize.StripTags(req.ContactPhone),
		Active:       req.Active,
	}, shared.Actor(r))
	if errors.Is(err, organisationstore.ErrEmptyName) {
		apierr.BadRequest(w, "organisation name cannot be empty")
		return
	}
	if err != nil {
		apierr.Internal(w, h.Log, "create organisation", err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, org)
}
