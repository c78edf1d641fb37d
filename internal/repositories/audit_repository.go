package repositories

import (
	"cornerstone_backend/internal/models"

	"gorm.io/gorm"
)

// AuditRepository is append-only. No read, update or delete path exists.
type AuditRepository interface {
	Create(entry *models.AuditEntry) error
}

type AuditRepositoryImpl struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &AuditRepositoryImpl{db: db}
}

func (r *AuditRepositoryImpl) Create(entry *models.AuditEntry) error {
	return r.db.Create(entry).Error
}
