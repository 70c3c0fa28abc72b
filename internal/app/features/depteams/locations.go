// internal/app/features/depteams/locations.go
package depteams

import (
	"context"
	"errors"
	"net/http"

	apierr "github.com/rotahub/rotahub/internal/app/features/errors"
	"github.com/rotahub/rotahub/internal/app/features/shared"
	depteamstore "github.com/rotahub/rotahub/internal/app/store/depteams"
	teamlocassignstore "github.com/rotahub/rotahub/internal/app/store/teamlocassign"
	"github.com/rotahub/rotahub/internal/app/system/timeouts"
	"github.com/rotahub/rotahub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeLocationAssignments lists a team's location assignments.
//
// Route: GET /teams/{id}/locations
func (h *Handler) ServeLocationAssignments(w http.ResponseWriter, r *http.Request) {
	teamID, err := shared.URLObjectID(r, "id")
	if err != nil {
		apierr.BadRequest(w, "bad team id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	assigns, err := h.LocAssigns.ListByTeam(ctx, teamID)
	if err != nil {
		apierr.Internal(w, h.Log, "list team location assignments", err)
		return
	}
	if assigns == nil {
		assigns = []models.DepTeamHospLocAssignment{}
	}

	shared.WriteJSON(w, http.StatusOK, assigns)
}

type assignLocationRequest struct {
	LocationID string `json:"location_id"`
}

// HandleAssignLocation links a location to a team. The owning
// department is resolved from the team record so assignment rows
// always carry a dep_id consistent with the team.
//
// Route: POST /teams/{id}/locations
func (h *Handler) HandleAssignLocation(w http.ResponseWriter, r *http.Request) {
	teamID, err := shared.URLObjectID(r, "id")
	if err != nil {
		apierr.BadRequest(w, "bad team id")
		return
	}

	var req assignLocationRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		apierr.BadRequest(w, "invalid request body")
		return
	}
	locID, err := primitive.ObjectIDFromHex(req.LocationID)
	if err != nil {
		apierr.BadRequest(w, "location_id must be a valid location id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	team, err := h.Store.GetByID(ctx, teamID)
	if errors.Is(err, depteamstore.ErrNotFound) {
		apierr.NotFound(w, "team not found")
		return
	}
	if err != nil {
		apierr.Internal(w, h.Log, "load team", err)
		return
	}

	a, err := h.LocAssigns.Assign(ctx, team.DepID, team.ID, locID, shared.Actor(r))
	if errors.Is(err, teamlocassignstore.ErrAlreadyAssigned) {
		apierr.Conflict(w, "location is already assigned to this team")
		return
	}
	if err != nil {
		apierr.Internal(w, h.Log, "assign team location", err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, a)
}

// HandleUnassignLocation removes one team-location assignment.
//
// Route: DELETE /teams/{id}/locations/{assignmentID}
func (h *Handler) HandleUnassignLocation(w http.ResponseWriter, r *http.Request) {
	if _, err := shared.URLObjectID(r, "id"); err != nil {
		apierr.BadRequest(w, "bad team id")
		return
	}
	assignID, err := shared.URLObjectID(r, "assignmentID")
	if err != nil {
		apierr.BadRequest(w, "bad assignment id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.LocAssigns.Delete(ctx, assignID)
	if errors.Is(err, teamlocassignstore.ErrNotFound) {
		apierr.NotFound(w, "team-location assignment not found")
		return
	}
	if err != nil {
		apierr.Internal(w, h.Log, "unassign team location", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
