// internal/app/features/depteams/handler.go
package depteams

import (
	departmentstore "github.com/rotahub/rotahub/internal/app/store/departments"
	depteamstore "github.com/rotahub/rotahub/internal/app/store/depteams"
	teamlocassignstore "github.com/rotahub/rotahub/internal/app/store/teamlocassign"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for department teams.
type Handler struct {
	Store       *depteamstore.Store
	Departments *departmentstore.Store
	LocAssigns  *teamlocassignstore.Store
	Log         *zap.Logger
}

// NewHandler constructs a teams handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store:       depteamstore.New(db),
		Departments: departmentstore.New(db),
		LocAssigns:  teamlocassignstore.New(db),
		Log:         logger,
	}
}
