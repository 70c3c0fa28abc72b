// internal/app/store/teamlocassign/teamlocassignstore.go
package teamlocassignstore

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

// Store wraps department_team_location_assignments. DepID is carried
// on every record so department-wide cleanup stays a single query.
type Store struct {
	c *mongo.Collection
}

var (
	ErrNotFound        = errors.New("team-location assignment not found")
	ErrAlreadyAssigned = errors.New("location is already assigned to this team")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("department_team_location_assignments")}
}

func (s *Store) Assign(ctx context.Context, depID, teamID, locID primitive.ObjectID, actor string) (models.DepTeamHospLocAssignment, error) {
	a := models.DepTeamHospLocAssignment{
		ID:         primitive.NewObjectID(),
		DepID:      depID,
		TeamID:     teamID,
		LocationID: locID,
	}
	a.Stamp(time.Now().UTC(), actor)

	if _, err := s.c.InsertOne(ctx, a); err != nil {
		if wafflemongo.IsDup(err) {
			return models.DepTeamHospLocAssignment{}, ErrAlreadyAssigned
		}
		return models.DepTeamHospLocAssignment{}, fmt.Errorf("insert team-location assignment: %w", err)
	}
	return a, nil
}

func (s *Store) ListByDepartment(ctx context.Context, depID primitive.ObjectID) ([]models.DepTeamHospLocAssignment, error) {
	return s.list(ctx, bson.M{"dep_id": depID})
}

func (s *Store) ListByTeam(ctx context.Context, teamID primitive.ObjectID) ([]models.DepTeamHospLocAssignment, error) {
	return s.list(ctx, bson.M{"team_id": teamID})
}

func (s *Store) list(ctx context.Context, filter bson.M) ([]models.DepTeamHospLocAssignment, error) {
	cur, err := s.c.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list team-location assignments: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.DepTeamHospLocAssignment
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode team-location assignments: %w", err)
	}
	return out, nil
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete team-location assignment: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteByDepartment(ctx context.Context, depID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"dep_id": depID})
	if err != nil {
		return 0, fmt.Errorf("delete team-location assignments: %w", err)
	}
	return res.DeletedCount, nil
}

func (s *Store) DeleteByTeam(ctx context.Context, teamID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"team_id": teamID})
	if err != nil {
		return 0, fmt.Errorf("delete team-location assignments: %w", err)
	}
	return res.DeletedCount, nil
}
