package organisationstore

import (
	"errors"
	"testing"

	"github.com/rotahub/rotahub/internal/domain/models"
	"github.com/rotahub/rotahub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	org, err := s.Create(ctx, models.Organisation{
		Name:         "  Mercy Trust ",
		ContactEmail: "ops@mercy.example",
		Active:       true,
	}, "admin-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if org.Name != "Mercy Trust" {
		t.Errorf("name not trimmed: %q", org.Name)
	}
	if org.NameCI != "mercy trust" {
		t.Errorf("name_ci: %q", org.NameCI)
	}

	got, err := s.GetByID(ctx, org.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ContactEmail != "ops@mercy.example" {
		t.Errorf("contact_email: %q", got.ContactEmail)
	}
}

func TestCreate_EmptyName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := s.Create(ctx, models.Organisation{Name: " "}, "u"); !errors.Is(err, ErrEmptyName) {
		t.Errorf("got %v, want ErrEmptyName", err)
	}
}

func TestCreate_DuplicateNamesAllowed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := s.Create(ctx, models.Organisation{Name: "Mercy Trust"}, "u"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := s.Create(ctx, models.Organisation{Name: "Mercy Trust"}, "u"); err != nil {
		t.Errorf("second create with same name: %v", err)
	}
}

func TestList_SortedByName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	s := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	f.CreateOrganisation(ctx, "Valley Trust")
	f.CreateOrganisation(ctx, "abbey Trust")
	f.CreateOrganisation(ctx, "Mercy Trust")

	orgs, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(orgs) != 3 {
		t.Fatalf("got %d organisations, want 3", len(orgs))
	}
	want := []string{"abbey Trust", "Mercy Trust", "Valley Trust"}
	for i, name := range want {
		if orgs[i].Name != name {
			t.Errorf("orgs[%d]: got %q, want %q", i, orgs[i].Name, name)
		}
	}
}

func TestUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	s := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganisation(ctx, "Mercy Trust")

	phone := "01234 567890"
	active := false
	got, err := s.Update(ctx, org.ID, Update{ContactPhone: &phone, Active: &active}, "admin-2")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.ContactPhone != phone || got.Active {
		t.Errorf("update not applied: %+v", got)
	}
	if got.UpdatedByID != "admin-2" {
		t.Errorf("updated_by_id: %q", got.UpdatedByID)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	name := "x"
	if _, err := s.Update(ctx, primitive.NewObjectID(), Update{Name: &name}, "u"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	s := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganisation(ctx, "Mercy Trust")

	if err := s.Delete(ctx, org.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.GetByID(ctx, org.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("organisation still present: %v", err)
	}
	if err := s.Delete(ctx, org.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}
}

func TestCountHospitals(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	s := New(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := f.CreateOrganisation(ctx, "Mercy Trust")
	other := f.CreateOrganisation(ctx, "Valley Trust")
	f.CreateHospital(ctx, "Mercy General", org.ID)
	f.CreateHospital(ctx, "Mercy North", org.ID)
	f.CreateHospital(ctx, "Valley General", other.ID)

	n, err := s.CountHospitals(ctx, org.ID)
	if err != nil {
		t.Fatalf("CountHospitals: %v", err)
	}
	if n != 2 {
		t.Errorf("got %d, want 2", n)
	}
}
