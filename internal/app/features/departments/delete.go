// internal/app/features/departments/delete.go
package departments

import (
	"context"
	"errors"
	"net/http"

	apierr "github.com/rotahub/rotahub/internal/app/features/errors"
	"github.com/rotahub/rotahub/internal/app/features/shared"
	departmentstore "github.com/rotahub/rotahub/internal/app/store/departments"
	"github.com/rotahub/rotahub/internal/app/system/timeouts"
)

// HandleDelete removes a department and cascades to its teams and
// assignment records. Direct location assignments block the delete.
//
// Route: DELETE /departments/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.URLObjectID(r, "id")
	if err != nil {
		apierr.BadRequest(w, "bad department id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Batch())
	defer cancel()

	err = h.Store.Delete(ctx, id)
	if errors.Is(err, departmentstore.ErrHasLocationAssignments) {
		apierr.Conflict(w, "department has assigned locations; remove them first")
		return
	}
	if err != nil {
		apierr.Internal(w, h.Log, "delete department", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
