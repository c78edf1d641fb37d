package repositories

import (
	"time"

	"cornerstone_backend/internal/models"

	"gorm.io/gorm"
)

// ListLimit is the hard cap on rows a single List returns. Not a pagination
// cursor: rows past the cap are invisible to the UI regardless of read state.
const ListLimit = 50

type NotificationRepository interface {
	Create(notification *models.Notification) error
	ListByOwner(ownerID string) ([]models.Notification, error)
	MarkRead(ownerID, notificationID string) error
	MarkAllRead(ownerID string) error
	CountUnread(ownerID string) (int64, error)
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// ListByOwner returns the owner's notifications, newest first, capped at
// ListLimit.
func (r *NotificationRepositoryImpl) ListByOwner(ownerID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Limit(ListLimit).
		Find(&notifications).Error
	return notifications, err
}

// MarkRead stamps read_at on a single unread row. The update is scoped by
// both id and owner, and filters on read_at IS NULL, so re-marking a read
// row and touching someone else's row both affect zero rows. Zero rows is
// still success: not-found and not-owned are deliberately indistinguishable.
func (r *NotificationRepositoryImpl) MarkRead(ownerID, notificationID string) error {
	result := r.db.Model(&models.Notification{}).
		Where("id = ? AND owner_id = ? AND read_at IS NULL", notificationID, ownerID).
		Update("read_at", time.Now())
	return result.Error
}

// MarkAllRead stamps read_at on every unread row the owner has. Rows already
// read are untouched by the store-level filter.
func (r *NotificationRepositoryImpl) MarkAllRead(ownerID string) error {
	result := r.db.Model(&models.Notification{}).
		Where("owner_id = ? AND read_at IS NULL", ownerID).
		Update("read_at", time.Now())
	return result.Error
}

func (r *NotificationRepositoryImpl) CountUnread(ownerID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("owner_id = ? AND read_at IS NULL", ownerID).
		Count(&count).Error
	return count, err
}
