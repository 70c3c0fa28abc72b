// internal/app/store/depteams/depteamstore.go
package depteamstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	teamlocassignstore "github.com/rotahub/rotahub/internal/app/store/teamlocassign"
	"github.com/rotahub/rotahub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Store owns the department_teams collection. Location assignments
// cleaned up when a team goes away are handled through the
// team-location assignment store.
type Store struct {
	c          *mongo.Collection // department_teams
	locAssigns *teamlocassignstore.Store
}

var (
	ErrNotFound    = errors.New("team not found")
	ErrEmptyName   = errors.New("team name cannot be empty")
	ErrOrgRequired = errors.New("organisation id is required")
	ErrDepRequired = errors.New("department id is required")
)

func New(db *mongo.Database) *Store {
	return &Store{
		c:          db.Collection("department_teams"),
		locAssigns: teamlocassignstore.New(db),
	}
}

// ListByDep returns every team in the department, sorted by name.
// Team names carry no uniqueness invariant.
func (s *Store) ListByDep(ctx context.Context, depID primitive.ObjectID) ([]models.DepTeam, error) {
	cur, err := s.c.Find(ctx, bson.M{"dep_id": depID}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.DepTeam
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode teams: %w", err)
	}
	return out, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.DepTeam, error) {
	var team models.DepTeam
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&team)
	if err == mongo.ErrNoDocuments {
		return models.DepTeam{}, ErrNotFound
	}
	if err != nil {
		return models.DepTeam{}, fmt.Errorf("load team: %w", err)
	}
	return team, nil
}

func (s *Store) Create(ctx context.Context, team models.DepTeam, actor string) (models.DepTeam, error) {
	if team.OrgID.IsZero() {
		return models.DepTeam{}, ErrOrgRequired
	}
	if team.DepID.IsZero() {
		return models.DepTeam{}, ErrDepRequired
	}
	name := strings.TrimSpace(team.Name)
	if name == "" {
		return models.DepTeam{}, ErrEmptyName
	}

	team.ID = primitive.NewObjectID()
	team.Name = name
	team.Stamp(time.Now().UTC(), actor)

	if _, err := s.c.InsertOne(ctx, team); err != nil {
		return models.DepTeam{}, fmt.Errorf("insert team: %w", err)
	}

	var created models.DepTeam
	if err := s.c.FindOne(ctx, bson.M{"_id": team.ID}).Decode(&created); err != nil {
		return models.DepTeam{}, fmt.Errorf("read back team: %w", err)
	}
	return created, nil
}

// Update holds the mutable team fields.
type Update struct {
	Name        *string
	Description *string
	Active      *bool
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update, actor string) (models.DepTeam, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return models.DepTeam{}, err
	}

	set := bson.M{}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return models.DepTeam{}, ErrEmptyName
		}
		if name != current.Name {
			set["name"] = name
		}
	}
	if upd.Description != nil && *upd.Description != current.Description {
		set["description"] = *upd.Description
	}
	if upd.Active != nil && *upd.Active != current.Active {
		set["active"] = *upd.Active
	}

	if len(set) == 0 {
		return current, nil
	}

	set["updated_at"] = time.Now().UTC()
	set["updated_by_id"] = actor

	if _, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set}); err != nil {
		return models.DepTeam{}, fmt.Errorf("update team: %w", err)
	}

	var updated models.DepTeam
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&updated); err != nil {
		return models.DepTeam{}, fmt.Errorf("read back team: %w", err)
	}
	return updated, nil
}

// Delete removes a team and its location assignments. Deleting a team
// that does not exist is a silent no-op, so retried deletes and
// already-cascaded teams never surface an error.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.locAssigns.DeleteByTeam(ctx, id); err != nil {
		return fmt.Errorf("cleanup team-location assignments: %w", err)
	}

	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if res.DeletedCount == 0 {
		zap.L().Debug("delete of absent team ignored", zap.String("team_id", id.Hex()))
	}
	return nil
}
