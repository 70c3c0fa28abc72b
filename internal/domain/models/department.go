// internal/domain/models/department.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Department is an organisational unit owned by one Organisation.
//
// Name is unique within an organisation (case-sensitive). The
// departments store runs a pre-write duplicate query and the unique
// (org_id, name) index backstops concurrent creators.
type Department struct {
	ID     primitive.ObjectID `bson:"_id" json:"id"`
	Name   string             `bson:"name" json:"name"`
	NameCI string             `bson:"name_ci" json:"name_ci"`
	OrgID  primitive.ObjectID `bson:"org_id" json:"org_id"`
	Active bool               `bson:"active" json:"active"`

	Audit `bson:",inline"`
}

// DepTeam is a sub-grouping inside a Department. Teams carry no
// uniqueness invariant and no dependency checks on delete.
type DepTeam struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	OrgID       primitive.ObjectID `bson:"org_id" json:"org_id"`
	DepID       primitive.ObjectID `bson:"dep_id" json:"dep_id"`
	Active      bool               `bson:"active" json:"active"`

	Audit `bson:",inline"`
}
