// internal/domain/models/organisation.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Organisation is the top-level tenant boundary. Hospitals are linked
// to an organisation by HospitalOrgAssignment records, never embedded.
//
// Organisation names are NOT unique; two trusts may register the same
// display name. NameCI is stored for case/diacritic-insensitive
// search and sort.
type Organisation struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	Name         string             `bson:"name" json:"name"`
	NameCI       string             `bson:"name_ci" json:"name_ci"`
	ContactEmail string             `bson:"contact_email" json:"contact_email"`
	ContactPhone string             `bson:"contact_phone" json:"contact_phone"`
	Active       bool               `bson:"active" json:"active"`

	Audit `bson:",inline"`
}

// Hospital is a physical site belonging to an organisation (via
// hospital_organisation_assignments).
type Hospital struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Name     string             `bson:"name" json:"name"`
	NameCI   string             `bson:"name_ci" json:"name_ci"`
	Address  string             `bson:"address" json:"address"`
	City     string             `bson:"city" json:"city"`
	Postcode string             `bson:"postcode" json:"postcode"`
	Active   bool               `bson:"active" json:"active"`

	Audit `bson:",inline"`
}
