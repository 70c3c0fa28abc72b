// internal/app/features/organisations/handler.go
package organisations

import (
	hosporgassignstore "github.com/rotahub/rotahub/internal/app/store/hosporgassign"
	organisationstore "github.com/rotahub/rotahub/internal/app/store/organisations"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Organisations.
type Handler struct {
	Store       *organisationstore.Store
	HospAssigns *hosporgassignstore.Store
	Log         *zap.Logger
}

// NewHandler constructs an Organisations handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store:       organisationstore.New(db),
		HospAssigns: hosporgassignstore.New(db),
		Log:         logger,
	}
}
