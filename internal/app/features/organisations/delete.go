// internal/app/features/organisations/delete.go
package organisations

import (
	"context"
	"errors"
	"net/http"

	apierr "github.com/rotahub/rotahub/internal/app/features/errors"
	"github.com/rotahub/rotahub/internal/app/features/shared"
	organisationstore "github.com/rotahub/rotahub/internal/app/store/organisations"
	"github.com/rotahub/rotahub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleDelete deletes an organisation.
//
// Route: DELETE /organisations/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.URLObjectID(r, "id")
	if err != nil {
		apierr.BadRequest(w, "bad organisation id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Store.Delete(ctx, id)
	if errors.Is(err, organisationstore.ErrNotFound) {
		apierr.NotFound(w, "organisation not found")
		return
	}
	if err != nil {
		apierr.Internal(w, h.Log, "delete organisation", err)
		return
	}

	h.Log.Info("organisation deleted", zap.String("org_id", id.Hex()))
	w.WriteHeader(http.StatusNoContent)
}
