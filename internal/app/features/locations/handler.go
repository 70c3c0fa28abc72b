// internal/app/features/locations/handler.go
package locations

import (
	hosplocstore "github.com/rotahub/rotahub/internal/app/store/hosplocs"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for hospital locations.
type Handler struct {
	Store *hosplocstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a locations handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: hosplocstore.New(db),
		Log:   logger,
	}
}
