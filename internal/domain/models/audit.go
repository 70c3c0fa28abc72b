// internal/domain/models/audit.go
package models

import "time"

// Audit carries the write-tracking fields every rotahub document stores.
// CreatedAt/CreatedByID are set once at insert and never change;
// UpdatedAt/UpdatedByID are refreshed on every write.
type Audit struct {
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
	CreatedByID string    `bson:"created_by_id" json:"created_by_id"`
	UpdatedByID string    `bson:"updated_by_id" json:"updated_by_id"`
}

// Stamp initializes all four audit fields for a fresh document.
func (a *Audit) Stamp(now time.Time, actor string) {
	a.CreatedAt = now
	a.UpdatedAt = now
	a.CreatedByID = actor
	a.UpdatedByID = actor
}
