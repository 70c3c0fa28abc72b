// internal/app/features/rota/handler.go
package rota

import (
	hosplocstore "github.com/rotahub/rotahub/internal/app/store/hosplocs"
	rotastore "github.com/rotahub/rotahub/internal/app/store/rota"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for the weekly rota.
type Handler struct {
	Store     *rotastore.Store
	Locations *hosplocstore.Store
	Log       *zap.Logger
}

// NewHandler constructs a rota handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store:     rotastore.New(db),
		Locations: hosplocstore.New(db),
		Log:       logger,
	}
}
