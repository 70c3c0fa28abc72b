// internal/app/features/rota/week.go
package rota

import (
	"context"
	"errors"
	"net/http"
	"regexp"

	apierr "github.com/rotahub/rotahub/internal/app/features/errors"
	"github.com/rotahub/rotahub/internal/app/features/shared"
	rotastore "github.com/rotahub/rotahub/internal/app/store/rota"
	"github.com/rotahub/rotahub/internal/app/system/timeouts"
	"github.com/rotahub/rotahub/internal/domain/models"
)

// weekIDPattern matches ISO week ids like "2024-W10".
var weekIDPattern = regexp.MustCompile(`^\d{4}-W\d{2}$`)

// ServeWeek returns one week of rota assignments sorted by day then
// user.
//
// Route: GET /rota?week={weekID}
func (h *Handler) ServeWeek(w http.ResponseWriter, r *http.Request) {
	weekID := r.URL.Query().Get("week")
	if !weekIDPattern.MatchString(weekID) {
		apierr.BadRequest(w, "week query parameter must be an ISO week id like 2024-W10")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	week, err := h.Store.ListByWeek(ctx, weekID)
	if err != nil {
		apierr.Internal(w, h.Log, "list rota week", err)
		return
	}
	if week == nil {
		week = []models.RotaAssignment{}
	}

	shared.WriteJSON(w, http.StatusOK, week)
}

// ServeView returns one rota assignment.
//
// Route: GET /rota/{id}
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, err := shared.URLObjectID(r, "id")
	if err != nil {
		apierr.BadRequest(w, "bad rota assignment id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	a, err := h.Store.GetByID(ctx, id)
	if errors.Is(err, rotastore.ErrNotFound) {
		apierr.NotFound(w, "rota assignment not found")
		return
	}
	if err != nil {
		apierr.Internal(w, h.Log, "load rota assignment", err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, a)
}
