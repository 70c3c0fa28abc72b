package deplocassignstore

import (
	"errors"
	"testing"

	"github.com/rotahub/rotahub/internal/app/system/indexes"
	"github.com/rotahub/rotahub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAssignAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	s := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganisation(ctx, "Mercy Trust")
	dep := f.CreateDepartment(ctx, "Pharmacy", org.ID)
	locA := f.CreateLocation(ctx, "Ward A", org.ID, nil)
	locB := f.CreateLocation(ctx, "Ward B", org.ID, nil)

	if _, err := s.Assign(ctx, dep.ID, locA.ID, "u"); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if _, err := s.Assign(ctx, dep.ID, locB.ID, "u"); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	got, err := s.ListByDepartment(ctx, dep.ID)
	if err != nil {
		t.Fatalf("ListByDepartment: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d assignments, want 2", len(got))
	}
}

func TestAssign_DuplicateRejectedByIndex(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	s := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll: %v", err)
	}

	org := f.CreateOrganisation(ctx, "Mercy Trust")
	dep := f.CreateDepartment(ctx, "Pharmacy", org.ID)
	loc := f.CreateLocation(ctx, "Ward A", org.ID, nil)

	if _, err := s.Assign(ctx, dep.ID, loc.ID, "u"); err != nil {
		t.Fatalf("first Assign: %v", err)
	}
	if _, err := s.Assign(ctx, dep.ID, loc.ID, "u"); !errors.Is(err, ErrAlreadyAssigned) {
		t.Errorf("second Assign: got %v, want ErrAlreadyAssigned", err)
	}
}

func TestExistsForDepartment(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	s := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganisation(ctx, "Mercy Trust")
	dep := f.CreateDepartment(ctx, "Pharmacy", org.ID)

	ok, err := s.ExistsForDepartment(ctx, dep.ID)
	if err != nil {
		t.Fatalf("ExistsForDepartment: %v", err)
	}
	if ok {
		t.Error("expected no assignments")
	}

	loc := f.CreateLocation(ctx, "Ward A", org.ID, nil)
	f.CreateDepLocAssignment(ctx, dep.ID, loc.ID)

	ok, err = s.ExistsForDepartment(ctx, dep.ID)
	if err != nil {
		t.Fatalf("ExistsForDepartment: %v", err)
	}
	if !ok {
		t.Error("expected assignments to exist")
	}
}

func TestDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	s := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganisation(ctx, "Mercy Trust")
	dep := f.CreateDepartment(ctx, "Pharmacy", org.ID)
	loc := f.CreateLocation(ctx, "Ward A", org.ID, nil)
	a := f.CreateDepLocAssignment(ctx, dep.ID, loc.ID)

	if err := s.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, a.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, primitive.NewObjectID()); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id: got %v, want ErrNotFound", err)
	}
}
