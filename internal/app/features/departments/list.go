// internal/app/features/departments/list.go
package departments

import (
	"context"
	"errors"
	"net/http"

	apierr "github.com/rotahub/rotahub/internal/app/features/errors"
	"github.com/rotahub/rotahub/internal/app/features/shared"
	departmentstore "github.com/rotahub/rotahub/internal/app/store/departments"
	"github.com/rotahub/rotahub/internal/app/system/timeouts"
	"github.com/rotahub/rotahub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeList returns all departments for an organisation.
//
// Route: GET /departments?org={orgID}
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	orgID, err := primitive.ObjectIDFromHex(r.URL.Query().Get("org"))
	if err != nil {
		apierr.BadRequest(w, "org query parameter must be a valid organisation id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deps, err := h.Store.ListByOrg(ctx, orgID)
	if err != nil {
		apierr.Internal(w, h.Log, "list departments", err)
		return
	}
	if deps == nil {
		deps = []models.Department{}
	}

	shared.WriteJSON(w, http.StatusOK, deps)
}

// ServeView returns one department.
//
// Route: GET /departments/{id}
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, err := shared.URLObjectID(r, "id")
	if err != nil {
		apierr.BadRequest(w, "bad department id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	dep, err := h.Store.GetByID(ctx, id)
	if errors.Is(err, departmentstore.ErrNotFound) {
		apierr.NotFound(w, "department not found")
		return
	}
	if err != nil {
		apierr.Internal(w, h.Log, "load department", err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, dep)
}
