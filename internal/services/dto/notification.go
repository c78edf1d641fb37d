package dto

import "time"

// CreateNotificationRequest is issued by trusted server-side workflows on
// behalf of the owner, never by the owner themselves.
type CreateNotificationRequest struct {
	OwnerID   string  `json:"owner_id" binding:"required"`
	Title     string  `json:"title" binding:"required"`
	Body      *string `json:"body"`
	Category  *string `json:"category"`
	LinkHref  *string `json:"link_href"`
	LinkLabel *string `json:"link_label"`
	EmailCopy bool    `json:"email_copy"`
}

type CreateNotificationResponse struct {
	ID string `json:"id"`
}

// NotificationResponse is the normalized row shape. Optional fields are
// explicit nulls in JSON, never omitted.
type NotificationResponse struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"owner_id"`
	Title     string     `json:"title"`
	Body      *string    `json:"body"`
	Category  *string    `json:"category"`
	LinkHref  *string    `json:"link_href"`
	LinkLabel *string    `json:"link_label"`
	ReadAt    *time.Time `json:"read_at"`
	CreatedAt time.Time  `json:"created_at"`
}

// NotificationListResponse carries the rows plus an optional display-only
// error message. Callers must not branch on the message contents.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Error         string                 `json:"error,omitempty"`
}
