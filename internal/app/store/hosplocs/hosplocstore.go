// internal/app/store/hosplocs/hosplocstore.go
package hosplocstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/rotahub/rotahub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection // hospital_locations
}

var (
	ErrNotFound    = errors.New("location not found")
	ErrEmptyName   = errors.New("location name cannot be empty")
	ErrOrgRequired = errors.New("organisation id is required")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("hospital_locations")}
}

// ListByOrg returns the organisation's locations sorted by folded name.
func (s *Store) ListByOrg(ctx context.Context, orgID primitive.ObjectID) ([]models.HospLoc, error) {
	cur, err := s.c.Find(ctx, bson.M{"org_id": orgID},
		options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.HospLoc
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode locations: %w", err)
	}
	return out, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.HospLoc, error) {
	var loc models.HospLoc
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&loc)
	if err == mongo.ErrNoDocuments {
		return models.HospLoc{}, ErrNotFound
	}
	if err != nil {
		return models.HospLoc{}, fmt.Errorf("load location: %w", err)
	}
	return loc, nil
}

// NamesByIDs returns a hex-id to display-name map for the given
// locations. Missing ids are simply absent from the map.
func (s *Store) NamesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("load location names: %w", err)
	}
	defer cur.Close(ctx)

	names := make(map[string]string, len(ids))
	for cur.Next(ctx) {
		var loc models.HospLoc
		if err := cur.Decode(&loc); err != nil {
			continue
		}
		names[loc.ID.Hex()] = loc.Name
	}
	return names, cur.Err()
}

func (s *Store) Create(ctx context.Context, loc models.HospLoc, actor string) (models.HospLoc, error) {
	if loc.OrgID.IsZero() {
		return models.HospLoc{}, ErrOrgRequired
	}
	name := strings.TrimSpace(loc.Name)
	if name == "" {
		return models.HospLoc{}, ErrEmptyName
	}

	loc.ID = primitive.NewObjectID()
	loc.Name = name
	loc.NameCI = text.Fold(name)
	loc.Stamp(time.Now().UTC(), actor)

	if _, err := s.c.InsertOne(ctx, loc); err != nil {
		return models.HospLoc{}, fmt.Errorf("insert location: %w", err)
	}

	var created models.HospLoc
	if err := s.c.FindOne(ctx, bson.M{"_id": loc.ID}).Decode(&created); err != nil {
		return models.HospLoc{}, fmt.Errorf("read back location: %w", err)
	}
	return created, nil
}

// Update holds the mutable location fields.
type Update struct {
	Name         *string
	Type         *string
	Address      *string
	ContactEmail *string
	ContactPhone *string
	Color        *string
	Active       *bool
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update, actor string) (models.HospLoc, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return models.HospLoc{}, err
	}

	set := bson.M{}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return models.HospLoc{}, ErrEmptyName
		}
		if name != current.Name {
			set["name"] = name
			set["name_ci"] = text.Fold(name)
		}
	}
	if upd.Type != nil && *upd.Type != current.Type {
		set["type"] = *upd.Type
	}
	if upd.Address != nil && *upd.Address != current.Address {
		set["address"] = *upd.Address
	}
	if upd.ContactEmail != nil && *upd.ContactEmail != current.ContactEmail {
		set["contact_email"] = *upd.ContactEmail
	}
	if upd.ContactPhone != nil && *upd.ContactPhone != current.ContactPhone {
		set["contact_phone"] = *upd.ContactPhone
	}
	if upd.Color != nil && *upd.Color != current.Color {
		set["color"] = *upd.Color
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
		return models.HospLoc{}, fmt.Errorf("update location: %w", err)
	}

	var updated models.HospLoc
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&updated); err != nil {
		return models.HospLoc{}, fmt.Errorf("read back location: %w", err)
	}
	return updated, nil
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
