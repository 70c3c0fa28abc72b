// internal/app/features/modules/modules.go
package modules

import (
	"context"
	"errors"
	"net/http"

	apierr "github.com/rotahub/rotahub/internal/app/features/errors"
	"github.com/rotahub/rotahub/internal/app/features/shared"
	modulestore "github.com/rotahub/rotahub/internal/app/store/modules"
	"github.com/rotahub/rotahub/internal/app/system/htmlsanitize"
	"github.com/rotahub/rotahub/internal/app/system/timeouts"
	"github.com/rotahub/rotahub/internal/domain/models"
)

// ServeList returns the global module catalogue.
//
// Route: GET /modules
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	mods, err := h.Store.List(ctx)
	if err != nil {
		apierr.Internal(w, h.Log, "list modules", err)
		return
	}
	if mods == nil {
		mods = []models.Module{}
	}

	shared.WriteJSON(w, http.StatusOK, mods)
}

// ServeView returns one module.
//
// Route: GET /modules/{id}
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, err := shared.URLObjectID(r, "id")
	if err != nil {
		apierr.BadRequest(w, "bad module id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	mod, err := h.Store.GetByID(ctx, id)
	if errors.Is(err, modulestore.ErrNotFound) {
		apierr.NotFound(w, "module not found")
		return
	}
	if err != nil {
		apierr.Internal(w, h.Log, "load module", err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, mod)
}

type createRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URLPath     string `json:"url_path"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Active      bool   `json:"active"`
}

// HandleCreate adds a module to the catalogue.
//
// Route: POST /modules
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		apierr.BadRequest(w, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	mod, err := h.Store.Create(ctx, models.Module{
		Name:        htmlsanitize.StripTags(req.Name),
		Description: htmlsanitize.Sanitize(req.Description),
		URLPath:     htmlsanitize.StripTags(req.URLPath),
		Icon:        htmlsanitize.StripTags(req.Icon),
		Color:       htmlsanitize.StripTags(req.Color),
		Active:      req.Active,
	}, shared.Actor(r))
	if errors.Is(err, modulestore.ErrEmptyName) {
		apierr.BadRequest(w, "module name cannot be empty")
		return
	}
	if err != nil {
		apierr.Internal(w, h.Log, "create module", err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, mod)
}

type updateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	URLPath     *string `json:"url_path"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
	Active      *bool   `json:"active"`
}

// HandleUpdate applies a partial update to a module.
//
// Route: PUT /modules/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := shared.URLObjectID(r, "id")
	if err != nil {
		apierr.BadRequest(w, "bad module id")
		return
	}

	var req updateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		apierr.BadRequest(w, "invalid request body")
		return
	}

	upd := modulestore.Update{Active: req.Active}
	if req.Name != nil {
		clean := htmlsanitize.StripTags(*req.Name)
		upd.Name = &clean
	}
	if req.Description != nil {
		clean := htmlsanitize.Sanitize(*req.Description)
		upd.Description = &clean
	}
	if req.URLPath != nil {
		clean := htmlsanitize.StripTags(*req.URLPath)
		upd.URLPath = &clean
	}
	if req.Icon != nil {
		clean := htmlsanitize.StripTags(*req.Icon)
		upd.Icon = &clean
	}
	if req.Color != nil {
		clean := htmlsanitize.StripTags(*req.Color)
		upd.Color = &clean
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	mod, err := h.Store.Update(ctx, id, upd, shared.Actor(r))
	switch {
	case errors.Is(err, modulestore.ErrNotFound):
		apierr.NotFound(w, "module not found")
		return
	case errors.Is(err, modulestore.ErrEmptyName):
		apierr.BadRequest(w, "module name cannot be empty")
		return
	case err != nil:
		apierr.Internal(w, h.Log, "update module", err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, mod)
}

// HandleDelete removes a module from the catalogue.
//
// Route: DELETE /modules/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.URLObjectID(r, "id")
	if err != nil {
		apierr.BadRequest(w, "bad module id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Store.Delete(ctx, id)
	if errors.Is(err, modulestore.ErrNotFound) {
		apierr.NotFound(w, "module not found")
		return
	}
	if err != nil {
		apierr.Internal(w, h.Log, "delete module", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
