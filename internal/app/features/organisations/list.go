// internal/app/features/organisations/list.go
package organisations

import (
	"context"
	"net/http"

	apierr "github.com/rotahub/rotahub/internal/app/features/errors"
	"github.com/rotahub/rotahub/internal/app/features/shared"
	"github.com/rotahub/rotahub/internal/app/system/timeouts"
	"github.com/rotahub/rotahub/internal/domain/models"
)

// ServeList returns every organisation sorted by name.
//
// Route: GET /organisations
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	orgs, err := h.Store.List(ctx)
	if err != nil {
		apierr.Internal(w, h.Log, "list organisations", err)
		return
	}
	if orgs == nil {
		orgs = []models.Organisation{}
	}

	shared.WriteJSON(w, http.StatusOK, orgs)
}
