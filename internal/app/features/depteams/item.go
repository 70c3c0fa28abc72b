// internal/app/features/depteams/item.go
package depteams

import (
	"context"
	"errors"
	"net/http"

	apierr "github.com/rotahub/rotahub/internal/app/features/errors"
	"github.com/rotahub/rotahub/internal/app/features/shared"
	depteamstore "github.com/rotahub/rotahub/internal/app/store/depteams"
	"github.com/rotahub/rotahub/internal/app/system/htmlsanitize"
	"github.com/rotahub/rotahub/internal/app/system/timeouts"
)

// ServeView returns one team.
//
// Route: GET /teams/{id}
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, err := shared.URLObjectID(r, "id")
	if err != nil {
		apierr.BadRequest(w, "bad team id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	team, err := h.Store.GetByID(ctx, id)
	if errors.Is(err, depteamstore.ErrNotFound) {
		apierr.NotFound(w, "team not found")
		return
	}
	if err != nil {
		apierr.Internal(w, h.Log, "load team", err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, team)
}

type updateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

// HandleUpdate applies a partial update to a team.
//
// Route: PUT /teams/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := shared.URLObjectID(r, "id")
	if err != nil {
		apierr.BadRequest(w, "bad team id")
		return
	}

	var req updateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		apierr.BadRequest(w, "invalid request body")
		return
	}

	upd := depteamstore.Update{Active: req.Active}
	if req.Name != nil {
		clean := htmlsanitize.StripTags(*req.Name)
		upd.Name = &clean
	}
	if req.Description != nil {
		clean := htmlsanitize.Sanitize(*req.Description)
		upd.Description = &clean
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	team, err := h.Store.Update(ctx, id, upd, shared.Actor(r))
	switch {
	case errors.Is(err, depteamstore.ErrNotFound):
		apierr.NotFound(w, "team not found")
		return
	case errors.Is(err, depteamstore.ErrEmptyName):
		apierr.BadRequest(w, "team name cannot be empty")
		return
	case err != nil:
		apierr.Internal(w, h.Log, "update team", err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, team)
}

// HandleDelete removes a team and its location assignments. Deleting
// an absent team still answers 204.
//
// Route: DELETE /teams/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.URLObjectID(r, "id")
	if err != nil {
		apierr.BadRequest(w, "bad team id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		apierr.Internal(w, h.Log, "delete team", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
