package services

import (
	"context"
	"encoding/json"

	"cornerstone_backend/internal/logger"
	"cornerstone_backend/internal/models"
	"cornerstone_backend/internal/repositories"

	"gorm.io/datatypes"
)

// Audit action tags.
const (
	AuditActionNotificationCreated  = "notification.created"
	AuditActionNotificationsReadAll = "notifications.read_all"
	AuditActionPreferenceUpdated    = "preference.updated"
	AuditActionUserLogin            = "auth.login"
)

type AuditService interface {
	// Record writes one entry synchronously.
	Record(ctx context.Context, actorID *string, action, entityType, entityID string, meta map[string]interface{}) error

	// RecordAsync writes in the background. Errors are logged and swallowed;
	// no caller ever consumes a result.
	RecordAsync(ctx context.Context, actorID *string, action, entityType, entityID string, meta map[string]interface{})
}

type auditService struct {
	auditRepo repositories.AuditRepository
}

func NewAuditService(auditRepo repositories.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

func (s *auditService) Record(ctx context.Context, actorID *string, action, entityType, entityID string, meta map[string]interface{}) error {
	entry := &models.AuditEntry{
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
	}

	if meta != nil {
		jsonMeta, err := json.Marshal(meta)
		if err != nil {
			return err
		}
		entry.Meta = datatypes.JSON(jsonMeta)
	}

	return s.auditRepo.Create(entry)
}

func (s *auditService) RecordAsync(ctx context.Context, actorID *string, action, entityType, entityID string, meta map[string]interface{}) {
	go func() {
		if err := s.Record(ctx, actorID, action, entityType, entityID, meta); err != nil {
			logger.CtxWithError(ctx, "audit write failed", err, "action", action, "entity_id", entityID)
		}
	}()
}
