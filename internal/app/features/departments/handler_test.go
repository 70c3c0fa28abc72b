package departments_test

import (
	"net/http"
	"testing"

	"github.com/rotahub/rotahub/internal/app/features/departments"
	"github.com/rotahub/rotahub/internal/testutil"
	"go.uber.org/zap"
)

func TestHandleCreate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	h := departments.NewHandler(db, zap.NewNop())

	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganisation(ctx, "Mercy Trust")

	req := testutil.NewJSONRequest(t, "POST", "/departments", map[string]any{
		"name":   "  Pharmacy ",
		"org_id": org.ID.Hex(),
		"active": true,
	})
	req.Header.Set("X-Actor-ID", "admin-7")
	rec := testutil.NewRecorder()

	h.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusCreated)

	var got struct {
		Name        string `json:"name"`
		CreatedByID string `json:"created_by_id"`
	}
	testutil.DecodeJSON(t, rec, &got)
	if got.Name != "Pharmacy" {
		t.Errorf("name: got %q, want Pharmacy", got.Name)
	}
	if got.CreatedByID != "admin-7" {
		t.Errorf("created_by_id: got %q, want admin-7", got.CreatedByID)
	}
}

func TestHandleCreate_Duplicate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	h := departments.NewHandler(db, zap.NewNop())

	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganisation(ctx, "Mercy Trust")
	f.CreateDepartment(ctx, "Pharmacy", org.ID)

	req := testutil.NewJSONRequest(t, "POST", "/departments", map[string]any{
		"name":   "Pharmacy",
		"org_id": org.ID.Hex(),
	})
	rec := testutil.NewRecorder()

	h.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusConflict)
	rec.AssertContains(t, "already exists")
}

func TestHandleCreate_BadBody(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := departments.NewHandler(db, zap.NewNop())

	req := testutil.NewJSONRequest(t, "POST", "/departments", map[string]any{
		"name":   "Pharmacy",
		"org_id": "not-hex",
	})
	rec := testutil.NewRecorder()

	h.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestHandleCreate_ZeroOrgID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := departments.NewHandler(db, zap.NewNop())

	// All-zeros is valid hex but not a usable organisation reference.
	req := testutil.NewJSONRequest(t, "POST", "/departments", map[string]any{
		"name":   "Pharmacy",
		"org_id": "000000000000000000000000",
	})
	rec := testutil.NewRecorder()

	h.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "org_id")
}

func TestServeView_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := departments.NewHandler(db, zap.NewNop())

	req := testutil.NewRequest("GET", "/departments/65b2f0000000000000000000")
	req = testutil.WithChiURLParam(req, "id", "65b2f0000000000000000000")
	rec := testutil.NewRecorder()

	h.ServeView(rec, req)

	rec.AssertStatus(t, http.StatusNotFound)
}

func TestHandleDelete_BlockedByLocations(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	h := departments.NewHandler(db, zap.NewNop())

	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganisation(ctx, "Mercy Trust")
	dep := f.CreateDepartment(ctx, "Pharmacy", org.ID)
	loc := f.CreateLocation(ctx, "Ward A", org.ID, nil)
	f.CreateDepLocAssignment(ctx, dep.ID, loc.ID)

	req := testutil.NewRequest("DELETE", "/departments/"+dep.ID.Hex())
	req = testutil.WithChiURLParam(req, "id", dep.ID.Hex())
	rec := testutil.NewRecorder()

	h.HandleDelete(rec, req)

	rec.AssertStatus(t, http.StatusConflict)
	rec.AssertContains(t, "assigned locations")
}

func TestHandleDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	h := departments.NewHandler(db, zap.NewNop())

	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganisation(ctx, "Mercy Trust")
	dep := f.CreateDepartment(ctx, "Pharmacy", org.ID)
	f.CreateTeam(ctx, "Wards", dep.ID)

	req := testutil.NewRequest("DELETE", "/departments/"+dep.ID.Hex())
	req = testutil.WithChiURLParam(req, "id", dep.ID.Hex())
	rec := testutil.NewRecorder()

	h.HandleDelete(rec, req)

	rec.AssertStatus(t, http.StatusNoContent)
}

func TestHandleAssignLocation_ThenUnassign(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	h := departments.NewHandler(db, zap.NewNop())

	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganisation(ctx, "Mercy Trust")
	dep := f.CreateDepartment(ctx, "Pharmacy", org.ID)
	loc := f.CreateLocation(ctx, "Ward A", org.ID, nil)

	req := testutil.NewJSONRequest(t, "POST", "/departments/"+dep.ID.Hex()+"/locations", map[string]any{
		"location_id": loc.ID.Hex(),
	})
	req = testutil.WithChiURLParam(req, "id", dep.ID.Hex())
	rec := testutil.NewRecorder()

	h.HandleAssignLocation(rec, req)
	rec.AssertStatus(t, http.StatusCreated)

	var assign struct {
		ID string `json:"id"`
	}
	testutil.DecodeJSON(t, rec, &assign)

	del := testutil.NewRequest("DELETE", "/departments/"+dep.ID.Hex()+"/locations/"+assign.ID)
	del = testutil.WithChiURLParam(del, "id", dep.ID.Hex())
	del = testutil.WithChiURLParam(del, "assignmentID", assign.ID)
	rec = testutil.NewRecorder()

	h.HandleUnassignLocation(rec, del)
	rec.AssertStatus(t, http.StatusNoContent)
}
