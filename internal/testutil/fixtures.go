package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"github.com/rotahub/rotahub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
// Repeated calls accumulate parameters on the same route context.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok || rctx == nil {
		rctx = chi.NewRouteContext()
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	}
	rctx.URLParams.Add(key, value)
	return r
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateOrganisation creates a test organisation with the given name.
// Returns the created organisation with its generated ID.
func (f *Fixtures) CreateOrganisation(ctx context.Context, name string) models.Organisation {
	f.t.Helper()

	now := time.Now().UTC().Truncate(time.Millisecond)
	org := models.Organisation{
		ID:           primitive.NewObjectID(),
		Name:         name,
		NameCI:       text.Fold(name),
		ContactEmail: "ops@example.org",
		Active:       true,
	}
	org.Stamp(now, "fixtures")

	_, err := f.db.Collection("organisations").InsertOne(ctx, org)
	if err != nil {
		f.t.Fatalf("failed to create test organisation: %v", err)
	}

	return org
}

// CreateHospital creates a test hospital in the given organisation and
// the assignment record linking the two.
func (f *Fixtures) CreateHospital(ctx context.Context, name string, orgID primitive.ObjectID) models.Hospital {
	f.t.Helper()

	now := time.Now().UTC().Truncate(time.Millisecond)
	h := models.Hospital{
		ID:     primitive.NewObjectID(),
		Name:   name,
		NameCI: text.Fold(name),
		City:   "Test City",
		Active: true,
	}
	h.Stamp(now, "fixtures")

	if _, err := f.db.Collection("hospitals").InsertOne(ctx, h); err != nil {
		f.t.Fatalf("failed to create test hospital: %v", err)
	}

	assign := models.HospitalOrgAssignment{
		ID:             primitive.NewObjectID(),
		HospitalID:     h.ID,
		OrganisationID: orgID,
	}
	assign.Stamp(now, "fixtures")
	if _, err := f.db.Collection("hospital_organisation_assignments").InsertOne(ctx, assign); err != nil {
		f.t.Fatalf("failed to create test hospital assignment: %v", err)
	}

	return h
}

// CreateDepartment creates a test department in the given organisation.
func (f *Fixtures) CreateDepartment(ctx context.Context, name string, orgID primitive.ObjectID) models.Department {
	f.t.Helper()

	now := time.Now().UTC().Truncate(time.Millisecond)
	dep := models.Department{
		ID:     primitive.NewObjectID(),
		Name:   name,
		NameCI: text.Fold(name),
		OrgID:  orgID,
		Active: true,
	}
	dep.Stamp(now, "fixtures")

	_, err := f.db.Collection("departments").InsertOne(ctx, dep)
	if err != nil {
		f.t.Fatalf("failed to create test department: %v", err)
	}

	return dep
}

// CreateTeam creates a test team in the given department.
func (f *Fixtures) CreateTeam(ctx context.Context, name string, depID primitive.ObjectID) models.DepTeam {
	f.t.Helper()

	now := time.Now().UTC().Truncate(time.Millisecond)
	team := models.DepTeam{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Description: "Test team",
		DepID:       depID,
		Active:      true,
	}
	team.Stamp(now, "fixtures")

	_, err := f.db.Collection("department_teams").InsertOne(ctx, team)
	if err != nil {
		f.t.Fatalf("failed to create test team: %v", err)
	}

	return team
}

// CreateLocation creates a test hospital location in the given
// organisation. hospitalID may be nil for a virtual location.
func (f *Fixtures) CreateLocation(ctx context.Context, name string, orgID primitive.ObjectID, hospitalID *primitive.ObjectID) models.HospLoc {
	f.t.Helper()

	now := time.Now().UTC().Truncate(time.Millisecond)
	loc := models.HospLoc{
		ID:         primitive.NewObjectID(),
		Name:       name,
		NameCI:     text.Fold(name),
		Type:       "ward",
		OrgID:      orgID,
		HospitalID: hospitalID,
		Active:     true,
	}
	loc.Stamp(now, "fixtures")

	_, err := f.db.Collection("hospital_locations").InsertOne(ctx, loc)
	if err != nil {
		f.t.Fatalf("failed to create test location: %v", err)
	}

	return loc
}

// CreateModule creates a test module.
func (f *Fixtures) CreateModule(ctx context.Context, name string) models.Module {
	f.t.Helper()

	now := time.Now().UTC().Truncate(time.Millisecond)
	mod := models.Module{
		ID:      primitive.NewObjectID(),
		Name:    name,
		NameCI:  text.Fold(name),
		URLPath: "/" + text.Fold(name),
		Active:  true,
	}
	mod.Stamp(now, "fixtures")

	_, err := f.db.Collection("modules").InsertOne(ctx, mod)
	if err != nil {
		f.t.Fatalf("failed to create test module: %v", err)
	}

	return mod
}

// CreateDepLocAssignment links a department directly to a location.
func (f *Fixtures) CreateDepLocAssignment(ctx context.Context, depID, locID primitive.ObjectID) models.DepHospLocAssignment {
	f.t.Helper()

	a := models.DepHospLocAssignment{
		ID:           primitive.NewObjectID(),
		DepartmentID: depID,
		LocationID:   locID,
	}
	a.Stamp(time.Now().UTC().Truncate(time.Millisecond), "fixtures")

	_, err := f.db.Collection("department_location_assignments").InsertOne(ctx, a)
	if err != nil {
		f.t.Fatalf("failed to create test department-location assignment: %v", err)
	}

	return a
}

// CreateTeamLocAssignment links a team to a location.
func (f *Fixtures) CreateTeamLocAssignment(ctx context.Context, depID, teamID, locID primitive.ObjectID) models.DepTeamHospLocAssignment {
	f.t.Helper()

	a := models.DepTeamHospLocAssignment{
		ID:         primitive.NewObjectID(),
		DepID:      depID,
		TeamID:     teamID,
		LocationID: locID,
	}
	a.Stamp(time.Now().UTC().Truncate(time.Millisecond), "fixtures")

	_, err := f.db.Collection("department_team_location_assignments").InsertOne(ctx, a)
	if err != nil {
		f.t.Fatalf("failed to create test team-location assignment: %v", err)
	}

	return a
}

// CreateModuleAssignment links a module to a department.
func (f *Fixtures) CreateModuleAssignment(ctx context.Context, depID, moduleID primitive.ObjectID) models.DepModuleAssignment {
	f.t.Helper()

	a := models.DepModuleAssignment{
		ID:       primitive.NewObjectID(),
		DepID:    depID,
		ModuleID: moduleID,
	}
	a.Stamp(time.Now().UTC().Truncate(time.Millisecond), "fixtures")

	_, err := f.db.Collection("department_module_assignments").InsertOne(ctx, a)
	if err != nil {
		f.t.Fatalf("failed to create test module assignment: %v", err)
	}

	return a
}

// CreateRotaAssignment creates a rota entry for the given user, team
// and week. dayIndex is Monday-based (0..6).
func (f *Fixtures) CreateRotaAssignment(ctx context.Context, userID, teamID primitive.ObjectID, weekID string, dayIndex int) models.RotaAssignment {
	f.t.Helper()

	day := dayIndex
	ra := models.RotaAssignment{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		TeamID:    teamID,
		WeekID:    weekID,
		DayIndex:  &day,
		ShiftType: "normal",
	}
	ra.Stamp(time.Now().UTC().Truncate(time.Millisecond), "fixtures")

	_, err := f.db.Collection("rota_assignments").InsertOne(ctx, ra)
	if err != nil {
		f.t.Fatalf("failed to create test rota assignment: %v", err)
	}

	return ra
}
