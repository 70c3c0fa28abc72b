// internal/app/store/rota/rotastore.go
package rotastore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rotahub/rotahub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type Store struct {
	c *mongo.Collection // rota_assignments
}

var (
	ErrNotFound         = errors.New("rota assignment not found")
	ErrUserRequired     = errors.New("user id is required")
	ErrWeekRequired     = errors.New("week id is required")
	ErrDayIndexRequired = errors.New("day index is required")
	ErrDayIndexRange    = errors.New("day index must be between 0 and 6")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("rota_assignments")}
}

// ListByWeek returns the week's assignments sorted by day then user.
// Documents that fail to decode are skipped and logged so one bad
// record never blanks the whole rota.
func (s *Store) ListByWeek(ctx context.Context, weekID string) ([]models.RotaAssignment, error) {
	cur, err := s.c.Find(ctx, bson.M{"week_id": weekID},
		options.Find().SetSort(bson.D{{Key: "day_index", Value: 1}, {Key: "user_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list rota week: %w", err)
	}
	defer cur.Close(ctx)

	var out []models.RotaAssignment
	for cur.Next(ctx) {
		var a models.RotaAssignment
		if err := cur.Decode(&a); err != nil {
			zap.L().Warn("skipping unmappable rota document",
				zap.String("week_id", weekID),
				zap.Error(err))
			continue
		}
		out = append(out, a)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list rota week: %w", err)
	}
	return out, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.RotaAssignment, error) {
	var a models.RotaAssignment
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return models.RotaAssignment{}, ErrNotFound
	}
	if err != nil {
		return models.RotaAssignment{}, fmt.Errorf("load rota assignment: %w", err)
	}
	return a, nil
}

// Create inserts a rota assignment. DayIndex is a pointer precisely so
// this check can tell Monday (0) apart from an absent value.
func (s *Store) Create(ctx context.Context, a models.RotaAssignment, actor string) (models.RotaAssignment, error) {
	if a.UserID.IsZero() {
		return models.RotaAssignment{}, ErrUserRequired
	}
	if a.WeekID == "" {
		return models.RotaAssignment{}, ErrWeekRequired
	}
	if a.DayIndex == nil {
		return models.RotaAssignment{}, ErrDayIndexRequired
	}
	if *a.DayIndex < 0 || *a.DayIndex > 6 {
		return models.RotaAssignment{}, ErrDayIndexRange
	}

	a.ID = primitive.NewObjectID()
	a.Stamp(time.Now().UTC(), actor)

	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return models.RotaAssignment{}, fmt.Errorf("insert rota assignment: %w", err)
	}

	var created models.RotaAssignment
	if err := s.c.FindOne(ctx, bson.M{"_id": a.ID}).Decode(&created); err != nil {
		return models.RotaAssignment{}, fmt.Errorf("read back rota assignment: %w", err)
	}
	return created, nil
}

// Update holds the mutable rota fields. Nil pointers leave the stored
// value untouched; ClearLocation switches the entry back to no
// referenced location.
type Update struct {
	DayIndex        *int
	ShiftType       *string
	CustomStartTime *string
	CustomEndTime   *string
	LocationID      *primitive.ObjectID
	ClearLocation   bool
	CustomLocation  *string
	Notes           *string
}

// Update applies the partial update unconditionally, stamps the audit
// fields and returns the updated entity.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update, actor string) (models.RotaAssignment, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return models.RotaAssignment{}, err
	}

	set := bson.M{
		"updated_at":    time.Now().UTC(),
		"updated_by_id": actor,
	}
	unset := bson.M{}

	if upd.DayIndex != nil {
		if *upd.DayIndex < 0 || *upd.DayIndex > 6 {
			return models.RotaAssignment{}, ErrDayIndexRange
		}
		set["day_index"] = *upd.DayIndex
	}
	if upd.ShiftType != nil {
		set["shift_type"] = *upd.ShiftType
	}
	if upd.CustomStartTime != nil {
		set["custom_start_time"] = *upd.CustomStartTime
	}
	if upd.CustomEndTime != nil {
		set["custom_end_time"] = *upd.CustomEndTime
	}
	if upd.ClearLocation {
		unset["location_id"] = ""
	} else if upd.LocationID != nil {
		set["location_id"] = *upd.LocationID
	}
	if upd.CustomLocation != nil {
		set["custom_location"] = *upd.CustomLocation
	}
	if upd.Notes != nil {
		set["notes"] = *upd.Notes
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	if _, err := s.c.UpdateByID(ctx, id, update); err != nil {
		return models.RotaAssignment{}, fmt.Errorf("update rota assignment: %w", err)
	}

	var updated models.RotaAssignment
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&updated); err != nil {
		return models.RotaAssignment{}, fmt.Errorf("read back rota assignment: %w", err)
	}
	return updated, nil
}

// Delete removes the assignment without any existence or dependency
// checks. Deleting an absent document is a silent no-op.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.c.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete rota assignment: %w", err)
	}
	return nil
}

// DeleteByWeek clears a whole week, returning the number of removed
// assignments. Used when a planner re-imports a week from scratch.
func (s *Store) DeleteByWeek(ctx context.Context, weekID string) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"week_id": weekID})
	if err != nil {
		return 0, fmt.Errorf("delete rota week: %w", err)
	}
	return res.DeletedCount, nil
}
