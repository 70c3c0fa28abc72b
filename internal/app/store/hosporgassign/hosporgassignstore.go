// internal/app/store/hosporgassign/hosporgassignstore.go
package hosporgassignstore

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

// Store wraps hospital_organisation_assignments, the records that
// link hospitals to organisations. Hospital counts per organisation
// are derived from these, never from fields on the hospital itself.
type Store struct {
	c *mongo.Collection
}

var (
	ErrNotFound        = errors.New("hospital assignment not found")
	ErrAlreadyAssigned = errors.New("hospital is already assigned to this organisation")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("hospital_organisation_assignments")}
}

func (s *Store) Assign(ctx context.Context, hospitalID, orgID primitive.ObjectID, actor string) (models.HospitalOrgAssignment, error) {
	a := models.HospitalOrgAssignment{
		ID:             primitive.NewObjectID(),
		HospitalID:     hospitalID,
		OrganisationID: orgID,
	}
	a.Stamp(time.Now().UTC(), actor)

	if _, err := s.c.InsertOne(ctx, a); err != nil {
		if wafflemongo.IsDup(err) {
			return models.HospitalOrgAssignment{}, ErrAlreadyAssigned
		}
		return models.HospitalOrgAssignment{}, fmt.Errorf("insert hospital assignment: %w", err)
	}
	return a, nil
}

func (s *Store) ListByOrganisation(ctx context.Context, orgID primitive.ObjectID) ([]models.HospitalOrgAssignment, error) {
	cur, err := s.c.Find(ctx, bson.M{"organisation_id": orgID})
	if err != nil {
		return nil, fmt.Errorf("list hospital assignments: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.HospitalOrgAssignment
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode hospital assignments: %w", err)
	}
	return out, nil
}

func (s *Store) CountByOrganisation(ctx context.Context, orgID primitive.ObjectID) (int64, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{"organisation_id": orgID})
	if err != nil {
		return 0, fmt.Errorf("count hospital assignments: %w", err)
	}
	return n, nil
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete hospital assignment: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteByOrganisation(ctx context.Context, orgID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"organisation_id": orgID})
	if err != nil {
		return 0, fmt.Errorf("delete hospital assignments: %w", err)
	}
	return res.DeletedCount, nil
}
