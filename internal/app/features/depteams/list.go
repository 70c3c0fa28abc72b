// internal/app/features/depteams/list.go
package depteams

import (
	"context"
	"errors"
	"net/http"

	apierr "github.com/rotahub/rotahub/internal/app/features/errors"
	"github.com/rotahub/rotahub/internal/app/features/shared"
	departmentstore "github.com/rotahub/rotahub/internal/app/store/departments"
	depteamstore "github.com/rotahub/rotahub/internal/app/store/depteams"
	"github.com/rotahub/rotahub/internal/app/system/htmlsanitize"
	"github.com/rotahub/rotahub/internal/app/system/timeouts"
	"github.com/rotahub/rotahub/internal/domain/models"
)

// ServeList returns the department's teams sorted by name.
//
// Route: GET /departments/{depID}/teams
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	depID, err := shared.URLObjectID(r, "depID")
	if err != nil {
		apierr.BadRequest(w, "bad department id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	teams, err := h.Store.ListByDep(ctx, depID)
	if err != nil {
		apierr.Internal(w, h.Log, "list teams", err)
		return
	}
	if teams == nil {
		teams = []models.DepTeam{}
	}

	shared.WriteJSON(w, http.StatusOK, teams)
}

type createRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// HandleCreate creates a team inside a department. The department
// must exist; the team inherits its organisation.
//
// Route: POST /departments/{depID}/teams
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	depID, err := shared.URLObjectID(r, "depID")
	if err != nil {
		apierr.BadRequest(w, "bad department id")
		return
	}

	var req createRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		apierr.BadRequest(w, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	dep, err := h.Departments.GetByID(ctx, depID)
	if errors.Is(err, departmentstore.ErrNotFound) {
		apierr.NotFound(w, "department not found")
		return
	}
	if err != nil {
		apierr.Internal(w, h.Log, "load department", err)
		return
	}

	team, err := h.Store.Create(ctx, models.DepTeam{
		Name:        htmlsanitize.StripTags(req.Name),
		Description: htmlsanitize.Sanitize(req.Description),
		OrgID:       dep.OrgID,
		DepID:       dep.ID,
		Active:      req.Active,
	}, shared.Actor(r))
	if errors.Is(err, depteamstore.ErrEmptyName) {
		apierr.BadRequest(w, "team name cannot be empty")
		return
	}
	if err != nil {
		apierr.Internal(w, h.Log, "create team", err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, team)
}
