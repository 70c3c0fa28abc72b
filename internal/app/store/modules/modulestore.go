// internal/app/store/modules/modulestore.go
package modulestore

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

// Store wraps the global modules collection. Modules are not scoped
// to an organisation; every department draws from the same catalogue.
type Store struct {
	c *mongo.Collection
}

var (
	ErrNotFound  = errors.New("module not found")
	ErrEmptyName = errors.New("module name cannot be empty")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("modules")}
}

func (s *Store) List(ctx context.Context) ([]models.Module, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.Module
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode modules: %w", err)
	}
	return out, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Module, error) {
	var mod models.Module
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&mod)
	if err == mongo.ErrNoDocuments {
		return models.Module{}, ErrNotFound
	}
	if err != nil {
		return models.Module{}, fmt.Errorf("load module: %w", err)
	}
	return mod, nil
}

func (s *Store) Create(ctx context.Context, mod models.Module, actor string) (models.Module, error) {
	name := strings.TrimSpace(mod.Name)
	if name == "" {
		return models.Module{}, ErrEmptyName
	}

	mod.ID = primitive.NewObjectID()
	mod.Name = name
	mod.NameCI = text.Fold(name)
	mod.Stamp(time.Now().UTC(), actor)

	if _, err := s.c.InsertOne(ctx, mod); err != nil {
		return models.Module{}, fmt.Errorf("insert module: %w", err)
	}

	var created models.Module
	if err := s.c.FindOne(ctx, bson.M{"_id": mod.ID}).Decode(&created); err != nil {
		return models.Module{}, fmt.Errorf("read back module: %w", err)
	}
	return created, nil
}

// Update holds the mutable module fields.
type Update struct {
	Name        *string
	Description *string
	URLPath     *string
	Icon        *string
	Color       *string
	Active      *bool
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update, actor string) (models.Module, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Module{}, err
	}

	set := bson.M{}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return models.Module{}, ErrEmptyName
		}
		if name != current.Name {
			set["name"] = name
			set["name_ci"] = text.Fold(name)
		}
	}
	if upd.Description != nil && *upd.Description != current.Description {
		set["description"] = *upd.Description
	}
	if upd.URLPath != nil && *upd.URLPath != current.URLPath {
		set["url_path"] = *upd.URLPath
	}
	if upd.Icon != nil && *upd.Icon != current.Icon {
		set["icon"] = *upd.Icon
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
		return models.Module{}, fmt.Errorf("update module: %w", err)
	}

	var updated models.Module
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&updated); err != nil {
		return models.Module{}, fmt.Errorf("read back module: %w", err)
	}
	return updated, nil
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete module: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
