package rota_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/rotahub/rotahub/internal/app/features/rota"
	"github.com/rotahub/rotahub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestHandleCreate_DayZero(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := rota.NewHandler(db, zap.NewNop())

	day := 0
	req := testutil.NewJSONRequest(t, "POST", "/rota", map[string]any{
		"user_id":    primitive.NewObjectID().Hex(),
		"week_id":    "2024-W10",
		"day_index":  &day,
		"shift_type": "normal",
	})
	rec := testutil.NewRecorder()

	h.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusCreated)
}

func TestHandleCreate_MissingDayIndex(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := rota.NewHandler(db, zap.NewNop())

	req := testutil.NewJSONRequest(t, "POST", "/rota", map[string]any{
		"user_id": primitive.NewObjectID().Hex(),
		"week_id": "2024-W10",
	})
	rec := testutil.NewRecorder()

	h.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "day index")
}

func TestServeWeek_BadWeekID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := rota.NewHandler(db, zap.NewNop())

	req := testutil.NewRequest("GET", "/rota?week=march")
	rec := testutil.NewRecorder()

	h.ServeWeek(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestServeExport(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	h := rota.NewHandler(db, zap.NewNop())

	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganisation(ctx, "Mercy Trust")
	dep := f.CreateDepartment(ctx, "Pharmacy", org.ID)
	team := f.CreateTeam(ctx, "Wards", dep.ID)
	f.CreateRotaAssignment(ctx, primitive.NewObjectID(), team.ID, "2024-W10", 0)
	f.CreateRotaAssignment(ctx, primitive.NewObjectID(), team.ID, "2024-W10", 3)

	req := testutil.NewRequest("GET", "/rota/export?week=2024-W10")
	rec := testutil.NewRecorder()

	h.ServeExport(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("Content-Type: got %q, want text/csv", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "rota_2024-W10_") {
		t.Errorf("Content-Disposition: %q", cd)
	}

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d CSV lines, want header plus 2 rows", len(lines))
	}
	if !strings.Contains(lines[1], "Monday") {
		t.Errorf("first row should be Monday: %q", lines[1])
	}
	if !strings.Contains(lines[2], "Thursday") {
		t.Errorf("second row should be Thursday: %q", lines[2])
	}
}
