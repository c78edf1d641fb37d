package models

import (
	"time"
)

// Notification is one user-visible alert. Every optional column is a real
// nullable, never an empty string: the access layer projects them as explicit
// nulls. ReadAt is the read marker; null means unread, and once set it is
// never cleared.
type Notification struct {
	BaseModel
	OwnerID   string  `gorm:"type:uuid;not null;index"`
	Title     string  `gorm:"not null"`
	Body      *string `gorm:"type:text"`
	Category  *string
	LinkHref  *string
	LinkLabel *string
	ReadAt    *time.Time
}
