// internal/app/features/rota/edit.go
package rota

import (
	"context"
	"errors"
	"net/http"

	apierr "github.com/rotahub/rotahub/internal/app/features/errors"
	"github.com/rotahub/rotahub/internal/app/features/shared"
	rotastore "github.com/rotahub/rotahub/internal/app/store/rota"
	"github.com/rotahub/rotahub/internal/app/system/htmlsanitize"
	"github.com/rotahub/rotahub/internal/app/system/timeouts"
	"github.com/rotahub/rotahub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type createRequest struct {
	UserID          string  `json:"user_id"`
	TeamID          *string `json:"team_id"`
	WeekID          string  `json:"week_id"`
	DayIndex        *int    `json:"day_index"`
	ShiftType       string  `json:"shift_type"`
	CustomStartTime string  `json:"custom_start_time"`
	CustomEndTime   string  `json:"custom_end_time"`
	LocationID      *string `json:"location_id"`
	CustomLocation  string  `json:"custom_location"`
	Notes           string  `json:"notes"`
}

// HandleCreate adds a rota assignment. day_index must be present in
// the body; 0 (Monday) is a valid value.
//
// Route: POST /rota
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		apierr.BadRequest(w, "invalid request body")
		return
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		apierr.BadRequest(w, "user_id must be a valid id")
		return
	}

	a := models.RotaAssignment{
		UserID:          userID,
		WeekID:          req.WeekID,
		DayIndex:        req.DayIndex,
		ShiftType:       htmlsanitize.StripTags(req.ShiftType),
		CustomStartTime: htmlsanitize.StripTags(req.CustomStartTime),
		CustomEndTime:   htmlsanitize.StripTags(req.CustomEndTime),
		CustomLocation:  htmlsanitize.StripTags(req.CustomLocation),
		Notes:           htmlsanitize.Sanitize(req.Notes),
	}

	if req.TeamID != nil && *req.TeamID != "" {
		teamID, err := primitive.ObjectIDFromHex(*req.TeamID)
		if err != nil {
			apierr.BadRequest(w, "team_id must be a valid id")
			return
		}
		a.TeamID = teamID
	}
	if req.LocationID != nil && *req.LocationID != "" {
		locID, err := primitive.ObjectIDFromHex(*req.LocationID)
		if err != nil {
			apierr.BadRequest(w, "location_id must be a valid id")
			return
		}
		a.LocationID = &locID
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Store.Create(ctx, a, shared.Actor(r))
	switch {
	case errors.Is(err, rotastore.ErrUserRequired),
		errors.Is(err, rotastore.ErrWeekRequired),
		errors.Is(err, rotastore.ErrDayIndexRequired),
		errors.Is(err, rotastore.ErrDayIndexRange):
		apierr.BadRequest(w, err.Error())
		return
	case err != nil:
		apierr.Internal(w, h.Log, "create rota assignment", err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, created)
}

type updateRequest struct {
	DayIndex        *int    `json:"day_index"`
	ShiftType       *string `json:"shift_type"`
	CustomStartTime *string `json:"custom_start_time"`
	CustomEndTime   *string `json:"custom_end_time"`
	LocationID      *string `json:"location_id"`
	CustomLocation  *string `json:"custom_location"`
	Notes           *string `json:"notes"`
}

// HandleUpdate applies a partial update to a rota assignment. Sending
// location_id as an empty string clears the referenced location.
//
// Route: PUT /rota/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := shared.URLObjectID(r, "id")
	if err != nil {
		apierr.BadRequest(w, "bad rota assignment id")
		return
	}

	var req updateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		apierr.BadRequest(w, "invalid request body")
		return
	}

	upd := rotastore.Update{DayIndex: req.DayIndex}
	if req.ShiftType != nil {
		clean := htmlsanitize.StripTags(*req.ShiftType)
		upd.ShiftType = &clean
	}
	if req.CustomStartTime != nil {
		clean := htmlsanitize.StripTags(*req.CustomStartTime)
		upd.CustomStartTime = &clean
	}
	if req.CustomEndTime != nil {
		clean := htmlsanitize.StripTags(*req.CustomEndTime)
		upd.CustomEndTime = &clean
	}
	if req.LocationID != nil {
		if *req.LocationID == "" {
			upd.ClearLocation = true
		} else {
			locID, err := primitive.ObjectIDFromHex(*req.LocationID)
			if err != nil {
				apierr.BadRequest(w, "location_id must be a valid id")
				return
			}
			upd.LocationID = &locID
		}
	}
	if req.CustomLocation != nil {
		clean := htmlsanitize.StripTags(*req.CustomLocation)
		upd.CustomLocation = &clean
	}
	if req.Notes != nil {
		clean := htmlsanitize.Sanitize(*req.Notes)
		upd.Notes = &clean
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	a, err := h.Store.Update(ctx, id, upd, shared.Actor(r))
	switch {
	case errors.Is(err, rotastore.ErrNotFound):
		apierr.NotFound(w, "rota assignment not found")
		return
	case errors.Is(err, rotastore.ErrDayIndexRange):
		apierr.BadRequest(w, err.Error())
		return
	case err != nil:
		apierr.Internal(w, h.Log, "update rota assignment", err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, a)
}

// HandleDelete removes a rota assignment. Absent documents delete
// silently.
//
// Route: DELETE /rota/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.URLObjectID(r, "id")
	if err != nil {
		apierr.BadRequest(w, "bad rota assignment id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		apierr.Internal(w, h.Log, "delete rota assignment", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
