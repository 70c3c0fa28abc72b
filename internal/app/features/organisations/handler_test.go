package organisations_test

import (
	"net/http"
	"testing"

	"github.com/rotahub/rotahub/internal/app/features/organisations"
	"github.com/rotahub/rotahub/internal/testutil"
	"go.uber.org/zap"
)

func TestHandleAssignHospital_CountReflectsAssignment(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	h := organisations.NewHandler(db, zap.NewNop())

	ctx, cancel := testutil.TestContext()
	defer cancel()

	// The fixture links the hospital to its own organisation; assign
	// it to a second organisation through the handler and check the
	// count there.
	orgA := f.CreateOrganisation(ctx, "Mercy Trust")
	hosp := f.CreateHospital(ctx, "St Mary", orgA.ID)
	org := f.CreateOrganisation(ctx, "Harbour Trust")

	req := testutil.NewJSONRequest(t, "POST", "/organisations/"+org.ID.Hex()+"/hospitals", map[string]any{
		"hospital_id": hosp.ID.Hex(),
	})
	req = testutil.WithChiURLParam(req, "id", org.ID.Hex())
	rec := testutil.NewRecorder()

	h.HandleAssignHospital(rec, req)
	rec.AssertStatus(t, http.StatusCreated)

	count := testutil.NewRequest("GET", "/organisations/"+org.ID.Hex()+"/hospital_count")
	count = testutil.WithChiURLParam(count, "id", org.ID.Hex())
	rec = testutil.NewRecorder()

	h.ServeHospitalCount(rec, count)
	rec.AssertStatus(t, http.StatusOK)

	var got struct {
		HospitalCount int64 `json:"hospital_count"`
	}
	testutil.DecodeJSON(t, rec, &got)
	if got.HospitalCount == 0 {
		t.Error("hospital_count is zero after assignment")
	}
}

func TestHandleAssignHospital_OrgNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := organisations.NewHandler(db, zap.NewNop())

	req := testutil.NewJSONRequest(t, "POST", "/organisations/65b2f0000000000000000000/hospitals", map[string]any{
		"hospital_id": "65b2f0000000000000000001",
	})
	req = testutil.WithChiURLParam(req, "id", "65b2f0000000000000000000")
	rec := testutil.NewRecorder()

	h.HandleAssignHospital(rec, req)
	rec.AssertStatus(t, http.StatusNotFound)
}

func TestHandleUnassignHospital(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	h := organisations.NewHandler(db, zap.NewNop())

	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganisation(ctx, "Mercy Trust")
	f.CreateHospital(ctx, "St Mary", org.ID)

	list := testutil.NewRequest("GET", "/organisations/"+org.ID.Hex()+"/hospitals")
	list = testutil.WithChiURLParam(list, "id", org.ID.Hex())
	rec := testutil.NewRecorder()

	h.ServeHospitalAssignments(rec, list)
	rec.AssertStatus(t, http.StatusOK)

	var assigns []struct {
		ID string `json:"id"`
	}
	testutil.DecodeJSON(t, rec, &assigns)
	if len(assigns) != 1 {
		t.Fatalf("got %d assignments, want 1", len(assigns))
	}

	del := testutil.NewRequest("DELETE", "/organisations/"+org.ID.Hex()+"/hospitals/"+assigns[0].ID)
	del = testutil.WithChiURLParam(del, "id", org.ID.Hex())
	del = testutil.WithChiURLParam(del, "assignmentID", assigns[0].ID)
	rec = testutil.NewRecorder()

	h.HandleUnassignHospital(rec, del)
	rec.AssertStatus(t, http.StatusNoContent)

	rec = testutil.NewRecorder()
	h.HandleUnassignHospital(rec, del)
	rec.AssertStatus(t, http.StatusNotFound)
}
