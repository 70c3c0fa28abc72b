package depteamstore

import (
	"errors"
	"testing"

	"github.com/rotahub/rotahub/internal/domain/models"
	"github.com/rotahub/rotahub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	s := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganisation(ctx, "Mercy Trust")
	dep := f.CreateDepartment(ctx, "Pharmacy", org.ID)

	if _, err := s.Create(ctx, models.DepTeam{Name: "Wards", OrgID: org.ID, DepID: dep.ID}, "u"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := s.Create(ctx, models.DepTeam{Name: "Dispensary", OrgID: org.ID, DepID: dep.ID}, "u"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	// Duplicate team names are allowed.
	if _, err := s.Create(ctx, models.DepTeam{Name: "Wards", OrgID: org.ID, DepID: dep.ID}, "u"); err != nil {
		t.Fatalf("Create duplicate name: %v", err)
	}

	teams, err := s.ListByDep(ctx, dep.ID)
	if err != nil {
		t.Fatalf("ListByDep: %v", err)
	}
	if len(teams) != 3 {
		t.Fatalf("got %d teams, want 3", len(teams))
	}
	if teams[0].Name != "Dispensary" {
		t.Errorf("expected name sort, first team %q", teams[0].Name)
	}
}

func TestCreate_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	orgID := primitive.NewObjectID()
	depID := primitive.NewObjectID()

	if _, err := s.Create(ctx, models.DepTeam{Name: " ", OrgID: orgID, DepID: depID}, "u"); !errors.Is(err, ErrEmptyName) {
		t.Errorf("blank name: got %v, want ErrEmptyName", err)
	}
	if _, err := s.Create(ctx, models.DepTeam{Name: "Wards", DepID: depID}, "u"); !errors.Is(err, ErrOrgRequired) {
		t.Errorf("missing org: got %v, want ErrOrgRequired", err)
	}
	if _, err := s.Create(ctx, models.DepTeam{Name: "Wards", OrgID: orgID}, "u"); !errors.Is(err, ErrDepRequired) {
		t.Errorf("missing dep: got %v, want ErrDepRequired", err)
	}
}

func TestUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	s := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganisation(ctx, "Mercy Trust")
	dep := f.CreateDepartment(ctx, "Pharmacy", org.ID)
	team := f.CreateTeam(ctx, "Wards", dep.ID)

	desc := "Ward cover team"
	got, err := s.Update(ctx, team.ID, Update{Description: &desc}, "u2")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Description != desc {
		t.Errorf("description: %q", got.Description)
	}
	if got.UpdatedByID != "u2" {
		t.Errorf("updated_by_id: %q", got.UpdatedByID)
	}
}

func TestDelete_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	s := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganisation(ctx, "Mercy Trust")
	dep := f.CreateDepartment(ctx, "Pharmacy", org.ID)
	team := f.CreateTeam(ctx, "Wards", dep.ID)
	loc := f.CreateLocation(ctx, "Ward A", org.ID, nil)
	f.CreateTeamLocAssignment(ctx, dep.ID, team.ID, loc.ID)

	if err := s.Delete(ctx, team.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.GetByID(ctx, team.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("team still present: %v", err)
	}

	n, err := db.Collection("department_team_location_assignments").CountDocuments(ctx, bson.M{"team_id": team.ID})
	if err != nil {
		t.Fatalf("count assignments: %v", err)
	}
	if n != 0 {
		t.Errorf("%d location assignments survived the team delete", n)
	}

	// A second delete of the same team is a silent no-op.
	if err := s.Delete(ctx, team.ID); err != nil {
		t.Errorf("repeat delete: %v", err)
	}
	// So is deleting a team that never existed.
	if err := s.Delete(ctx, primitive.NewObjectID()); err != nil {
		t.Errorf("delete of unknown team: %v", err)
	}
}
