package hosporgassignstore

import (
	"testing"

	"github.com/rotahub/rotahub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAssignAndCount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	s := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganisation(ctx, "Mercy Trust")
	other := f.CreateOrganisation(ctx, "Valley Trust")

	if _, err := s.Assign(ctx, primitive.NewObjectID(), org.ID, "u"); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if _, err := s.Assign(ctx, primitive.NewObjectID(), org.ID, "u"); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if _, err := s.Assign(ctx, primitive.NewObjectID(), other.ID, "u"); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	n, err := s.CountByOrganisation(ctx, org.ID)
	if err != nil {
		t.Fatalf("CountByOrganisation: %v", err)
	}
	if n != 2 {
		t.Errorf("got %d, want 2", n)
	}
}

func TestDeleteByOrganisation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	s := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganisation(ctx, "Mercy Trust")
	f.CreateHospital(ctx, "Mercy General", org.ID)
	f.CreateHospital(ctx, "Mercy North", org.ID)

	n, err := s.DeleteByOrganisation(ctx, org.ID)
	if err != nil {
		t.Fatalf("DeleteByOrganisation: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted %d, want 2", n)
	}

	left, err := s.CountByOrganisation(ctx, org.ID)
	if err != nil {
		t.Fatalf("CountByOrganisation: %v", err)
	}
	if left != 0 {
		t.Errorf("%d assignments left", left)
	}
}
