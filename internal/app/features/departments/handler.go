// internal/app/features/departments/handler.go
package departments

import (
	departmentstore "github.com/rotahub/rotahub/internal/app/store/departments"
	deplocassignstore "github.com/rotahub/rotahub/internal/app/store/deplocassign"
	depmoduleassignstore "github.com/rotahub/rotahub/internal/app/store/depmoduleassign"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Departments, including
// the location and module assignment subroutes.
type Handler struct {
	Store      *departmentstore.Store
	LocAssigns *deplocassignstore.Store
	ModAssigns *depmoduleassignstore.Store
	Log        *zap.Logger
}

// NewHandler constructs a Departments handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store:      departmentstore.New(db),
		LocAssigns: deplocassignstore.New(db),
		ModAssigns: depmoduleassignstore.New(db),
		Log:        logger,
	}
}
