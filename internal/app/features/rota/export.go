// internal/app/features/rota/export.go
package rota

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	apierr "github.com/rotahub/rotahub/internal/app/features/errors"
	"github.com/rotahub/rotahub/internal/app/system/csvutil"
	"github.com/rotahub/rotahub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServeExport streams one week of rota assignments as a CSV download.
// The filename carries a uuid suffix so repeated exports never clash
// in a download folder.
//
// Route: GET /rota/export?week={weekID}
func (h *Handler) ServeExport(w http.ResponseWriter, r *http.Request) {
	weekID := r.URL.Query().Get("week")
	if !weekIDPattern.MatchString(weekID) {
		apierr.BadRequest(w, "week query parameter must be an ISO week id like 2024-W10")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	week, err := h.Store.ListByWeek(ctx, weekID)
	if err != nil {
		apierr.Internal(w, h.Log, "list rota week", err)
		return
	}

	var locIDs []primitive.ObjectID
	seen := map[primitive.ObjectID]bool{}
	for _, a := range week {
		if a.LocationID != nil && !seen[*a.LocationID] {
			seen[*a.LocationID] = true
			locIDs = append(locIDs, *a.LocationID)
		}
	}
	names, err := h.Locations.NamesByIDs(ctx, locIDs)
	if err != nil {
		apierr.Internal(w, h.Log, "load location names", err)
		return
	}

	filename := fmt.Sprintf("rota_%s_%s.csv", weekID, uuid.NewString()[:8])
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := csvutil.WriteRota(w, weekID, week, names); err != nil {
		// Headers are gone at this point; all we can do is log.
		h.Log.Error("write rota csv", zap.Error(err), zap.String("week_id", weekID))
		return
	}

	h.Log.Info("rota week exported",
		zap.String("week_id", weekID),
		zap.Int("assignments", len(week)),
		zap.String("filename", filename))
}
