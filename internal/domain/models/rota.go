// internal/domain/models/rota.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RotaAssignment is one staff member's slot on the weekly rota,
// keyed by (user, week, day).
//
// DayIndex is a pointer so that day 0 (Monday) survives the
// required-field check: nil means missing, a zero value is a valid
// day. Shift is either a named shift type or a custom time range.
// Location is either a HospLoc reference or free-text CustomLocation.
type RotaAssignment struct {
	ID     primitive.ObjectID `bson:"_id" json:"id"`
	UserID primitive.ObjectID `bson:"user_id" json:"user_id"`
	TeamID primitive.ObjectID `bson:"team_id,omitempty" json:"team_id,omitempty"`

	WeekID   string `bson:"week_id" json:"week_id"` // ISO week, e.g. "2024-W10"
	DayIndex *int   `bson:"day_index" json:"day_index"`

	ShiftType       string `bson:"shift_type,omitempty" json:"shift_type,omitempty"`
	CustomStartTime string `bson:"custom_start_time,omitempty" json:"custom_start_time,omitempty"`
	CustomEndTime   string `bson:"custom_end_time,omitempty" json:"custom_end_time,omitempty"`

	LocationID     *primitive.ObjectID `bson:"location_id,omitempty" json:"location_id,omitempty"`
	CustomLocation string              `bson:"custom_location,omitempty" json:"custom_location,omitempty"`
	Notes          string              `bson:"notes,omitempty" json:"notes,omitempty"`

	Audit `bson:",inline"`
}
