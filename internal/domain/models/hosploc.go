// internal/domain/models/hosploc.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HospLoc is a hospital location: a ward, clinic, pharmacy or other
// assignable site. Locations are referenced by assignment records and
// rota entries; they never embed them.
type HospLoc struct {
	ID           primitive.ObjectID  `bson:"_id" json:"id"`
	Name         string              `bson:"name" json:"name"`
	NameCI       string              `bson:"name_ci" json:"name_ci"`
	Type         string              `bson:"type" json:"type"`
	HospitalID   *primitive.ObjectID `bson:"hospital_id,omitempty" json:"hospital_id,omitempty"`
	OrgID        primitive.ObjectID  `bson:"org_id" json:"org_id"`
	Address      string              `bson:"address" json:"address"`
	ContactEmail string              `bson:"contact_email" json:"contact_email"`
	ContactPhone string              `bson:"contact_phone" json:"contact_phone"`
	Color        string              `bson:"color" json:"color"`
	Active       bool                `bson:"active" json:"active"`

	Audit `bson:",inline"`
}

// Module is a global workload module departments can be assigned to.
type Module struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Name        string             `bson:"name" json:"name"`
	NameCI      string             `bson:"name_ci" json:"name_ci"`
	Description string             `bson:"description" json:"description"`
	URLPath     string             `bson:"url_path" json:"url_path"`
	Icon        string             `bson:"icon" json:"icon"`
	Color       string             `bson:"color" json:"color"`
	Active      bool               `bson:"active" json:"active"`

	Audit `bson:",inline"`
}
