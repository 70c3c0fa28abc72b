// internal/app/store/organisations/organisationstore.go
package organisationstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	hosporgassignstore "github.com/rotahub/rotahub/internal/app/store/hosporgassign"
	"github.com/rotahub/rotahub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store wraps the organisations collection. Hospital counts are
// answered through the hospital assignment store so both read the
// same records.
type Store struct {
	c           *mongo.Collection // organisations
	hospAssigns *hosporgassignstore.Store
}

var (
	ErrNotFound  = errors.New("organisation not found")
	ErrEmptyName = errors.New("organisation name cannot be empty")
)

func New(db *mongo.Database) *Store {
	return &Store{
		c:           db.Collection("organisations"),
		hospAssigns: hosporgassignstore.New(db),
	}
}

// List returns all organisations sorted by folded name. Organisation
// names are not unique, so callers should not key anything on them.
func (s *Store) List(ctx context.Context) ([]models.Organisation, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list organisations: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.Organisation
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode organisations: %w", err)
	}
	return out, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Organisation, error) {
	var org models.Organisation
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&org)
	if err == mongo.ErrNoDocuments {
		return models.Organisation{}, ErrNotFound
	}
	if err != nil {
		return models.Organisation{}, fmt.Errorf("load organisation: %w", err)
	}
	return org, nil
}

func (s *Store) Create(ctx context.Context, org models.Organisation, actor string) (models.Organisation, error) {
	name := strings.TrimSpace(org.Name)
	if name == "" {
		return models.Organisation{}, ErrEmptyName
	}

	org.ID = primitive.NewObjectID()
	org.Name = name
	org.NameCI = text.Fold(name)
	org.Stamp(time.Now().UTC(), actor)

	if _, err := s.c.InsertOne(ctx, org); err != nil {
		return models.Organisation{}, fmt.Errorf("insert organisation: %w", err)
	}

	var created models.Organisation
	if err := s.c.FindOne(ctx, bson.M{"_id": org.ID}).Decode(&created); err != nil {
		return models.Organisation{}, fmt.Errorf("read back organisation: %w", err)
	}
	return created, nil
}

// Update holds the mutable organisation fields. Nil pointers leave the
// stored value untouched.
type Update struct {
	Name         *string
	ContactEmail *string
	ContactPhone *string
	Active       *bool
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update, actor string) (models.Organisation, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Organisation{}, err
	}

	set := bson.M{}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return models.Organisation{}, ErrEmptyName
		}
		if name != current.Name {
			set["name"] = name
			set["name_ci"] = text.Fold(name)
		}
	}
	if upd.ContactEmail != nil && *upd.ContactEmail != current.ContactEmail {
		set["contact_email"] = *upd.ContactEmail
	}
	if upd.ContactPhone != nil && *upd.ContactPhone != current.ContactPhone {
		set["contact_phone"] = *upd.ContactPhone
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
		return models.Organisation{}, fmt.Errorf("update organisation: %w", err)
	}

	var updated models.Organisation
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&updated); err != nil {
		return models.Organisation{}, fmt.Errorf("read back organisation: %w", err)
	}
	return updated, nil
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete organisation: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CountHospitals returns the number of hospitals linked to the
// organisation via assignment records.
func (s *Store) CountHospitals(ctx context.Context, orgID primitive.ObjectID) (int64, error) {
	return s.hospAssigns.CountByOrganisation(ctx, orgID)
}
