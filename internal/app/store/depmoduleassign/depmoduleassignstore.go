// internal/app/store/depmoduleassign/depmoduleassignstore.go
package depmoduleassignstore

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

type Store struct {
	c *mongo.Collection // department_module_assignments
}

var (
	ErrNotFound        = errors.New("module assignment not found")
	ErrAlreadyAssigned = errors.New("module is already assigned to this department")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("department_module_assignments")}
}

func (s *Store) Assign(ctx context.Context, depID, moduleID primitive.ObjectID, actor string) (models.DepModuleAssignment, error) {
	a := models.DepModuleAssignment{
		ID:       primitive.NewObjectID(),
		DepID:    depID,
		ModuleID: moduleID,
	}
	a.Stamp(time.Now().UTC(), actor)

	if _, err := s.c.InsertOne(ctx, a); err != nil {
		if wafflemongo.IsDup(err) {
			return models.DepModuleAssignment{}, ErrAlreadyAssigned
		}
		return models.DepModuleAssignment{}, fmt.Errorf("insert module assignment: %w", err)
	}
	return a, nil
}

func (s *Store) ListByDepartment(ctx context.Context, depID primitive.ObjectID) ([]models.DepModuleAssignment, error) {
	cur, err := s.c.Find(ctx, bson.M{"dep_id": depID})
	if err != nil {
		return nil, fmt.Errorf("list module assignments: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.DepModuleAssignment
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode module assignments: %w", err)
	}
	return out, nil
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete module assignment: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteByDepartment(ctx context.Context, depID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"dep_id": depID})
	if err != nil {
		return 0, fmt.Errorf("delete module assignments: %w", err)
	}
	return res.DeletedCount, nil
}
