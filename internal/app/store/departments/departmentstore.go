// internal/app/store/departments/departmentstore.go
package departmentstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	teamlocassignstore "github.com/rotahub/rotahub/internal/app/store/teamlocassign"
	"github.com/rotahub/rotahub/internal/app/system/txn"
	"github.com/rotahub/rotahub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"

	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Store owns the departments collection and the dependent collections
// touched by the delete cascade.
type Store struct {
	c             *mongo.Collection // departments
	locAssigns    *mongo.Collection // department_location_assignments
	teamLocAssign *teamlocassignstore.Store
	moduleAssigns *mongo.Collection // department_module_assignments
	teams         *mongo.Collection // department_teams
	client        *mongo.Client
}

var (
	ErrNotFound                = errors.New("department not found")
	ErrOrgRequired             = errors.New("organisation id is required")
	ErrEmptyName               = errors.New("department name cannot be empty")
	ErrDuplicateDepartmentName = errors.New("a department with this name already exists in the organisation")

	// ErrHasLocationAssignments blocks deletion while direct location
	// assignments exist. The caller must remove those first.
	ErrHasLocationAssignments = errors.New("department has assigned locations; remove them first")

	// ErrInconsistentRead reports that a document written a moment ago
	// could not be read back and mapped. Treated as fatal, never retried.
	ErrInconsistentRead = errors.New("department not readable after write")
)

func New(db *mongo.Database) *Store {
	return &Store{
		c:             db.Collection("departments"),
		locAssigns:    db.Collection("department_location_assignments"),
		teamLocAssign: teamlocassignstore.New(db),
		moduleAssigns: db.Collection("department_module_assignments"),
		teams:         db.Collection("department_teams"),
		client:        db.Client(),
	}
}

// ListByOrg returns every department in the organisation. Documents
// that fail to decode are skipped and logged; a bad record never
// fails the whole listing.
func (s *Store) ListByOrg(ctx context.Context, orgID primitive.ObjectID) ([]models.Department, error) {
	cur, err := s.c.Find(ctx, bson.M{"org_id": orgID})
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.Department
	for cur.Next(ctx) {
		var d models.Department
		if err := cur.Decode(&d); err != nil {
			zap.L().Warn("skipping unmappable department document",
				zap.String("org_id", orgID.Hex()),
				zap.Error(err))
			continue
		}
		out = append(out, d)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return out, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Department, error) {
	var d models.Department
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return models.Department{}, ErrNotFound
	}
	if err != nil {
		return models.Department{}, fmt.Errorf("load department: %w", err)
	}
	return d, nil
}

// Create validates and inserts a department, then reads the stored
// document back so the caller gets exactly what the collection holds.
//
// Name uniqueness within the organisation is checked before the write
// (case-sensitive, to produce a friendly error) and enforced by the
// unique (org_id, name) index, which closes the check-then-act race
// between concurrent creators.
func (s *Store) Create(ctx context.Context, dep models.Department, actor string) (models.Department, error) {
	if dep.OrgID.IsZero() {
		return models.Department{}, ErrOrgRequired
	}
	name := strings.TrimSpace(dep.Name)
	if name == "" {
		return models.Department{}, ErrEmptyName
	}

	err := s.c.FindOne(ctx, bson.M{"org_id": dep.OrgID, "name": name}).Err()
	if err == nil {
		return models.Department{}, ErrDuplicateDepartmentName
	}
	if err != mongo.ErrNoDocuments {
		return models.Department{}, fmt.Errorf("duplicate-name check: %w", err)
	}

	dep.ID = primitive.NewObjectID()
	dep.Name = name
	dep.NameCI = text.Fold(name)
	dep.Stamp(time.Now().UTC(), actor)

	if _, err := s.c.InsertOne(ctx, dep); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Department{}, ErrDuplicateDepartmentName
		}
		return models.Department{}, fmt.Errorf("insert department: %w", err)
	}

	var created models.Department
	if err := s.c.FindOne(ctx, bson.M{"_id": dep.ID}).Decode(&created); err != nil {
		return models.Department{}, fmt.Errorf("%w: %v", ErrInconsistentRead, err)
	}
	return created, nil
}

// Update holds the mutable department fields. Nil pointers leave the
// stored value untouched.
type Update struct {
	Name   *string
	Active *bool
}

// Update applies a partial update. When the computed update carries no
// substantive change it skips the write entirely and returns the
// stored entity with its original audit stamps.
//
// The duplicate-name query runs only when the (trimmed) new name
// differs from the stored one, and excludes the document itself.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update, actor string) (models.Department, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Department{}, err
	}

	set := bson.M{}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return models.Department{}, ErrEmptyName
		}
		if name != current.Name {
			err := s.c.FindOne(ctx, bson.M{
				"org_id": current.OrgID,
				"name":   name,
				"_id":    bson.M{"$ne": id},
			}).Err()
			if err == nil {
				return models.Department{}, ErrDuplicateDepartmentName
			}
			if err != mongo.ErrNoDocuments {
				return models.Department{}, fmt.Errorf("duplicate-name check: %w", err)
			}
			set["name"] = name
			set["name_ci"] = text.Fold(name)
		}
	}

	if upd.Active != nil && *upd.Active != current.Active {
		set["active"] = *upd.Active
	}

	if len(set) == 0 {
		// Nothing beyond audit stamps would change; skip the write.
		return current, nil
	}

	set["updated_at"] = time.Now().UTC()
	set["updated_by_id"] = actor

	if _, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set}); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Department{}, ErrDuplicateDepartmentName
		}
		return models.Department{}, fmt.Errorf("update department: %w", err)
	}

	var updated models.Department
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&updated); err != nil {
		return models.Department{}, fmt.Errorf("%w: %v", ErrInconsistentRead, err)
	}
	return updated, nil
}

// Delete removes a department together with its dependent records.
//
// Direct location assignments block the delete outright (zero writes).
// Otherwise the cascade runs in three phases:
//
//  1. delete team-location assignments referencing the department
//  2. delete module assignments referencing the department
//  3. one batch removing the department's teams, any remaining
//     team-location assignments, and the department document itself
//
// A failure in (1) or (2) aborts before the batch; whatever those
// phases already removed stays removed (no compensation). The batch
// itself is all-or-nothing where the deployment supports transactions.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	n, err := s.locAssigns.CountDocuments(ctx, bson.M{"department_id": id})
	if err != nil {
		return fmt.Errorf("location-assignment check: %w", err)
	}
	if n > 0 {
		return ErrHasLocationAssignments
	}

	deleted, err := s.teamLocAssign.DeleteByDepartment(ctx, id)
	if err != nil {
		return fmt.Errorf("cleanup team-location assignments: %w", err)
	}
	if deleted > 0 {
		zap.L().Info("deleted team-location assignments for department",
			zap.String("department_id", id.Hex()),
			zap.Int64("count", deleted))
	}

	res, err := s.moduleAssigns.DeleteMany(ctx, bson.M{"dep_id": id})
	if err != nil {
		return fmt.Errorf("cleanup module assignments: %w", err)
	}
	if res.DeletedCount > 0 {
		zap.L().Info("deleted module assignments for department",
			zap.String("department_id", id.Hex()),
			zap.Int64("count", res.DeletedCount))
	}

	err = txn.WithBatch(ctx, s.client, zap.L(), func(ctx context.Context) error {
		if _, err := s.teams.DeleteMany(ctx, bson.M{"dep_id": id}); err != nil {
			return fmt.Errorf("delete department teams: %w", err)
		}
		// Teams may have gained location links between the cleanup
		// phase and the batch; sweep again inside it.
		if _, err := s.teamLocAssign.DeleteByDepartment(ctx, id); err != nil {
			return err
		}
		if _, err := s.c.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
			return fmt.Errorf("delete department: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	zap.L().Info("department deleted", zap.String("department_id", id.Hex()))
	return nil
}

// HasLocationAssignments reports whether any direct location
// assignment references the department.
func (s *Store) HasLocationAssignments(ctx context.Context, id primitive.ObjectID) (bool, error) {
	n, err := s.locAssigns.CountDocuments(ctx, bson.M{"department_id": id})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CountByOrg returns the number of departments in an organisation.
func (s *Store) CountByOrg(ctx context.Context, orgID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"org_id": orgID})
}
