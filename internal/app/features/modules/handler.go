// internal/app/features/modules/handler.go
package modules

import (
	modulestore "github.com/rotahub/rotahub/internal/app/store/modules"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for the module catalogue.
type Handler struct {
	Store *modulestore.Store
	Log   *zap.Logger
}

// NewHandler constructs a modules handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: modulestore.New(db),
		Log:   logger,
	}
}
