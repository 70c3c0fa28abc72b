// internal/app/store/deplocassign/deplocassignstore.go
package deplocassignstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/rotahub/rotahub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store wraps department_location_assignments, the link records whose
// existence blocks department deletion.
type Store struct {
	c *mongo.Collection
}

var (
	ErrNotFound        = errors.New("location assignment not found")
	ErrAlreadyAssigned = errors.New("location is already assigned to this department")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("department_location_assignments")}
}

// Assign links a location to a department. The unique
// (department_id, location_id) index rejects a second identical link.
func (s *Store) Assign(ctx context.Context, depID, locID primitive.ObjectID, actor string) (models.DepHospLocAssignment, error) {
	a := models.DepHospLocAssignment{
		ID:           primitive.NewObjectID(),
		DepartmentID: depID,
		LocationID:   locID,
	}
	a.Stamp(time.Now().UTC(), actor)

	if _, err := s.c.InsertOne(ctx, a); err != nil {
		if wafflemongo.IsDup(err) {
			return models.DepHospLocAssignment{}, ErrAlreadyAssigned
		}
		return models.DepHospLocAssignment{}, fmt.Errorf("insert location assignment: %w", err)
	}
	return a, nil
}

func (s *Store) ListByDepartment(ctx context.Context, depID primitive.ObjectID) ([]models.DepHospLocAssignment, error) {
	cur, err := s.c.Find(ctx, bson.M{"department_id": depID})
	if err != nil {
		return nil, fmt.Errorf("list location assignments: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.DepHospLocAssignment
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode location assignments: %w", err)
	}
	return out, nil
}

// ExistsForDepartment reports whether the department has any direct
// location assignment.
func (s *Store) ExistsForDepartment(ctx context.Context, depID primitive.ObjectID) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"department_id": depID}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check location assignments: %w", err)
	}
	return true, nil
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete location assignment: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteByDepartment(ctx context.Context, depID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"department_id": depID})
	if err != nil {
		return 0, fmt.Errorf("delete location assignments: %w", err)
	}
	return res.DeletedCount, nil
}
