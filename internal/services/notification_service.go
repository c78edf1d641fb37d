package services

import (
	"context"
	"fmt"
	"net/http"

	"cornerstone_backend/internal/email"
	"cornerstone_backend/internal/logger"
	"cornerstone_backend/internal/models"
	"cornerstone_backend/internal/repositories"
	"cornerstone_backend/internal/services/dto"
	"cornerstone_backend/pkg/apperrors"
)

// ErrNotAuthorized is returned by mutations invoked without a resolved
// principal. A generic message on purpose: no distinct status per cause.
var ErrNotAuthorized = apperrors.New(apperrors.CodeUnauthorized, "notifications", "authentication required", http.StatusUnauthorized)

type NotificationService interface {
	// ListForOwner returns the owner's rows, newest first, capped at the
	// store limit. An empty ownerID yields an empty slice and no error:
	// route-level gating is the caller's job, not this layer's.
	ListForOwner(ownerID string) ([]dto.NotificationResponse, error)

	// MarkRead stamps one row read. Idempotent; marking a row that does not
	// exist, already carries a read stamp, or belongs to someone else is a
	// silent success with zero effect.
	MarkRead(ownerID, notificationID string) error

	// MarkAllRead stamps every unread row the owner has. Idempotent.
	MarkAllRead(ownerID string) error

	// Create inserts a row on behalf of ownerID. Meant for trusted
	// server-side workflows; the caller is not required to be the owner.
	Create(ctx context.Context, req *dto.CreateNotificationRequest) (string, error)

	UnreadCount(ownerID string) (int64, error)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
	auditService     AuditService
	emailProvider    email.Provider
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	auditService AuditService,
	emailProvider email.Provider,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		auditService:     auditService,
		emailProvider:    emailProvider,
	}
}

func (s *notificationService) ListForOwner(ownerID string) ([]dto.NotificationResponse, error) {
	if ownerID == "" {
		return []dto.NotificationResponse{}, nil
	}

	notifications, err := s.notificationRepo.ListByOwner(ownerID)
	if err != nil {
		return []dto.NotificationResponse{}, fmt.Errorf("failed to load notifications: %w", err)
	}

	responses := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, buildNotificationResponse(&notifications[i]))
	}
	return responses, nil
}

func (s *notificationService) MarkRead(ownerID, notificationID string) error {
	if ownerID == "" {
		return ErrNotAuthorized
	}
	return s.notificationRepo.MarkRead(ownerID, notificationID)
}

func (s *notificationService) MarkAllRead(ownerID string) error {
	if ownerID == "" {
		return ErrNotAuthorized
	}
	if err := s.notificationRepo.MarkAllRead(ownerID); err != nil {
		return err
	}

	s.auditService.RecordAsync(context.Background(), &ownerID, AuditActionNotificationsReadAll, "user", ownerID, nil)
	return nil
}

func (s *notificationService) Create(ctx context.Context, req *dto.CreateNotificationRequest) (string, error) {
	owner, err := s.userRepo.FindByID(req.OwnerID)
	if err != nil {
		return "", apperrors.NewBadRequestError("owner not found")
	}

	notification := &models.Notification{
		OwnerID:   req.OwnerID,
		Title:     req.Title,
		Body:      req.Body,
		Category:  req.Category,
		LinkHref:  req.LinkHref,
		LinkLabel: req.LinkLabel,
	}

	if err := s.notificationRepo.Create(notification); err != nil {
		return "", err
	}

	s.auditService.RecordAsync(ctx, nil, AuditActionNotificationCreated, "notification", notification.ID, map[string]interface{}{
		"owner_id": req.OwnerID,
		"title":    req.Title,
	})

	if req.EmailCopy && s.emailProvider != nil {
		go s.sendEmailCopy(owner.Email, req)
	}

	return notification.ID, nil
}

func (s *notificationService) UnreadCount(ownerID string) (int64, error) {
	if ownerID == "" {
		return 0, nil
	}
	return s.notificationRepo.CountUnread(ownerID)
}

// sendEmailCopy mirrors a notification to the owner's inbox. Fire-and-forget:
// delivery failure never surfaces to the creating workflow.
func (s *notificationService) sendEmailCopy(to string, req *dto.CreateNotificationRequest) {
	body := req.Title
	if req.Body != nil {
		body = body + "\n\n" + *req.Body
	}
	if req.LinkHref != nil {
		body = body + "\n\n" + *req.LinkHref
	}

	msg := &email.Message{
		To:      to,
		Subject: req.Title,
		Body:    body,
	}
	if err := s.emailProvider.Send(msg); err != nil {
		logger.Warn("notification email copy failed", "error", err, "to", to)
	}
}

// buildNotificationResponse normalizes a store row. Every optional column
// maps to an explicit nullable field; the JSON layer never elides them.
func buildNotificationResponse(n *models.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:        n.ID,
		OwnerID:   n.OwnerID,
		Title:     n.Title,
		Body:      n.Body,
		Category:  n.Category,
		LinkHref:  n.LinkHref,
		LinkLabel: n.LinkLabel,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}
