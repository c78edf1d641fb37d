package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditEntry is an append-only record of a domain action. Write-only from
// this service's perspective: nothing in the app reads it back.
type AuditEntry struct {
	ID         string         `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ActorID    *string        `gorm:"type:uuid;index"`
	Action     string         `gorm:"not null;index"` // e.g. "notification.created"
	EntityType string         `gorm:"not null"`
	EntityID   string         `gorm:"not null;index"`
	Meta       datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"default:now()"`
}
