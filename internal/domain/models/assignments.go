// internal/domain/models/assignments.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Join records. Pure many-to-many link entities: no lifecycle beyond
// existence, no state, only foreign keys plus audit fields.

// DepHospLocAssignment links a Department directly to a HospLoc.
// Its existence blocks deletion of the department.
type DepHospLocAssignment struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	DepartmentID primitive.ObjectID `bson:"department_id" json:"department_id"`
	LocationID   primitive.ObjectID `bson:"location_id" json:"location_id"`

	Audit `bson:",inline"`
}

// DepTeamHospLocAssignment links a DepTeam to a HospLoc. DepID is
// denormalized onto the record so department-scoped cleanup is a
// single query.
type DepTeamHospLocAssignment struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	DepID      primitive.ObjectID `bson:"dep_id" json:"dep_id"`
	TeamID     primitive.ObjectID `bson:"team_id" json:"team_id"`
	LocationID primitive.ObjectID `bson:"location_id" json:"location_id"`

	Audit `bson:",inline"`
}

// DepModuleAssignment links a Department to a global Module.
type DepModuleAssignment struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	DepID    primitive.ObjectID `bson:"dep_id" json:"dep_id"`
	ModuleID primitive.ObjectID `bson:"module_id" json:"module_id"`

	Audit `bson:",inline"`
}

// HospitalOrgAssignment links a Hospital to an Organisation.
type HospitalOrgAssignment struct {
	ID             primitive.ObjectID `bson:"_id" json:"id"`
	HospitalID     primitive.ObjectID `bson:"hospital_id" json:"hospital_id"`
	OrganisationID primitive.ObjectID `bson:"organisation_id" json:"organisation_id"`

	Audit `bson:",inline"`
}
