// internal/app/features/organisations/view.go
package organisations

import (
	"context"
	"errors"
	"net/http"

	apierr "github.com/rotahub/rotahub/internal/app/features/errors"
	"github.com/rotahub/rotahub/internal/app/features/shared"
	organisationstore "github.com/rotahub/rotahub/internal/app/store/organisations"
	"github.com/rotahub/rotahub/internal/app/system/timeouts"
)

// ServeView returns one organisation.
//
// Route: GET /organisations/{id}
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, err := shared.URLObjectID(r, "id")
	if err != nil {
		apierr.BadRequest(w, "bad organisation id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	org, err := h.Store.GetByID(ctx, id)
	if errors.Is(err, organisationstore.ErrNotFound) {
		apierr.NotFound(w, "organisation not found")
		return
	}
	if err != nil {
		apierr.Internal(w, h.Log, "load organisation", err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, org)
}

// ServeHospitalCount returns the number of hospitals linked to the
// organisation through assignment records.
//
// Route: GET /organisations/{id}/hospital_count
func (h *Handler) ServeHospitalCount(w http.ResponseWriter, r *http.Request) {
	id, err := shared.URLObjectID(r, "id")
	if err != nil {
		apierr.BadRequest(w, "bad organisation id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := h.Store.CountHospitals(ctx, id)
	if err != nil {
		apierr.Internal(w, h.Log, "count hospitals", err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, map[string]int64{"hospital_count": n})
}
