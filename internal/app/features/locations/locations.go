// internal/app/features/locations/locations.go
package locations

import (
	"context"
	"errors"
	"net/http"

	apierr "github.com/rotahub/rotahub/internal/app/features/errors"
	"github.com/rotahub/rotahub/internal/app/features/shared"
	hosplocstore "github.com/rotahub/rotahub/internal/app/store/hosplocs"
	"github.com/rotahub/rotahub/internal/app/system/htmlsanitize"
	"github.com/rotahub/rotahub/internal/app/system/timeouts"
	"github.com/rotahub/rotahub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeList returns an organisation's locations.
//
// Route: GET /locations?org={orgID}
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	orgID, err := primitive.ObjectIDFromHex(r.URL.Query().Get("org"))
	if err != nil {
		apierr.BadRequest(w, "org query parameter must be a valid organisation id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	locs, err := h.Store.ListByOrg(ctx, orgID)
	if err != nil {
		apierr.Internal(w, h.Log, "list locations", err)
		return
	}
	if locs == nil {
		locs = []models.HospLoc{}
	}

	shared.WriteJSON(w, http.StatusOK, locs)
}

// ServeView returns one location.
//
// Route: GET /locations/{id}
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, err := shared.URLObjectID(r, "id")
	if err != nil {
		apierr.BadRequest(w, "bad location id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	loc, err := h.Store.GetByID(ctx, id)
	if errors.Is(err, hosplocstore.ErrNotFound) {
		apierr.NotFound(w, "location not found")
		return
	}
	if err != nil {
		apierr.Internal(w, h.Log, "load location", err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, loc)
}

type createRequest struct {
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	OrgID        string  `json:"org_id"`
	HospitalID   *string `json:"hospital_id"`
	Address      string  `json:"address"`
	ContactEmail string  `json:"contact_email"`
	ContactPhone string  `json:"contact_phone"`
	Color        string  `json:"color"`
	Active       bool    `json:"active"`
}

// HandleCreate creates a location.
//
// Route: POST /locations
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		apierr.BadRequest(w, "invalid request body")
		return
	}

	orgID, err := primitive.ObjectIDFromHex(req.OrgID)
	if err != nil {
		apierr.BadRequest(w, "org_id must be a valid organisation id")
		return
	}

	var hospID *primitive.ObjectID
	if req.HospitalID != nil && *req.HospitalID != "" {
		hid, err := primitive.ObjectIDFromHex(*req.HospitalID)
		if err != nil {
			apierr.BadRequest(w, "hospital_id must be a valid hospital id")
			return
		}
		hospID = &hid
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	loc, err := h.Store.Create(ctx, models.HospLoc{
		Name:         htmlsanitize.StripTags(req.Name),
		Type:         htmlsanitize.StripTags(req.Type),
		OrgID:        orgID,
		HospitalID:   hospID,
		Address:      htmlsanitize.StripTags(req.Address),
		ContactEmail: htmlsanitize.StripTags(req.ContactEmail),
		ContactPhone: htmlsanitize.StripTags(req.ContactPhone),
		Color:        htmlsanitize.StripTags(req.Color),
		Active:       req.Active,
	}, shared.Actor(r))
	if errors.Is(err, hosplocstore.ErrEmptyName) {
		apierr.BadRequest(w, "location name cannot be empty")
		return
	}
	if err != nil {
		apierr.Internal(w, h.Log, "create location", err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, loc)
}

type updateRequest struct {
	Name         *string `json:"name"`
	Type         *string `json:"type"`
	Address      *string `json:"address"`
	ContactEmail *string `json:"contact_email"`
	ContactPhone *string `json:"contact_phone"`
	Color        *string `json:"color"`
	Active       *bool   `json:"active"`
}

// HandleUpdate applies a partial update to a location.
//
// Route: PUT /locations/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := shared.URLObjectID(r, "id")
	if err != nil {
		apierr.BadRequest(w, "bad location id")
		return
	}

	var req updateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		apierr.BadRequest(w, "invalid request body")
		return
	}

	upd := hosplocstore.Update{
		Name:         sanitized(req.Name),
		Type:         sanitized(req.Type),
		Address:      sanitized(req.Address),
		ContactEmail: sanitized(req.ContactEmail),
		ContactPhone: sanitized(req.ContactPhone),
		Color:        sanitized(req.Color),
		Active:       req.Active,
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	loc, err := h.Store.Update(ctx, id, upd, shared.Actor(r))
	switch {
	case errors.Is(err, hosplocstore.ErrNotFound):
		apierr.NotFound(w, "location not found")
		return
	case errors.Is(err, hosplocstore.ErrEmptyName):
		apierr.BadRequest(w, "location name cannot be empty")
		return
	case err != nil:
		apierr.Internal(w, h.Log, "update location", err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, loc)
}

// HandleDelete removes a location.
//
// Route: DELETE /locations/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.URLObjectID(r, "id")
	if err != nil {
		apierr.BadRequest(w, "bad location id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Store.Delete(ctx, id)
	if errors.Is(err, hosplocstore.ErrNotFound) {
		apierr.NotFound(w, "location not found")
		return
	}
	if err != nil {
		apierr.Internal(w, h.Log, "delete location", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func sanitized(s *string) *string {
	if s == nil {
		return nil
	}
	clean := htmlsanitize.StripTags(*s)
	return &clean
}
