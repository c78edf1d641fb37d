// Package inbox is the shared client-side notification state consumed by the
// dashboard's two notification surfaces (the full-page panel and the topbar
// tray). Each surface owns its own Store instance; instances never share
// state, so two open surfaces only converge through their next Activate.
package inbox

import (
	"context"
	"sync"
	"time"

	"cornerstone_backend/internal/logger"
	"cornerstone_backend/internal/services"
	"cornerstone_backend/internal/services/dto"
)

// AccessLayer is the narrow server contract the store consumes. In-process
// it is backed by the notification service; the contract matches the HTTP
// API one-to-one.
type AccessLayer interface {
	List(ctx context.Context) ([]dto.NotificationResponse, error)
	MarkRead(ctx context.Context, notificationID string) error
	MarkAllRead(ctx context.Context) error
}

// ServiceAccess adapts the notification service to AccessLayer for one
// principal.
type ServiceAccess struct {
	Service services.NotificationService
	OwnerID string
}

func (a *ServiceAccess) List(ctx context.Context) ([]dto.NotificationResponse, error) {
	return a.Service.ListForOwner(a.OwnerID)
}

func (a *ServiceAccess) MarkRead(ctx context.Context, notificationID string) error {
	return a.Service.MarkRead(a.OwnerID, notificationID)
}

func (a *ServiceAccess) MarkAllRead(ctx context.Context) error {
	return a.Service.MarkAllRead(a.OwnerID)
}

// Store holds a surface's local materialized copy of the notification rows.
// Reads after Activate are served from the copy; read-marking is applied
// optimistically to the copy and pushed to the server fire-and-forget, so a
// failed remote call leaves the local view ahead of the store until the next
// Activate.
type Store struct {
	mu      sync.Mutex
	access  AccessLayer
	items   []dto.NotificationResponse
	lastErr string

	now func() time.Time
}

func NewStore(access AccessLayer) *Store {
	return &Store{
		access: access,
		now:    time.Now,
	}
}

// Activate fetches a fresh copy, replacing any local optimistic state. On
// failure the copy is emptied and LastError carries display-only text.
func (s *Store) Activate(ctx context.Context) {
	items, err := s.access.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.items = nil
		s.lastErr = err.Error()
		return
	}
	s.items = items
	s.lastErr = ""
}

// Items returns a copy of the local rows, newest first.
func (s *Store) Items() []dto.NotificationResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]dto.NotificationResponse, len(s.items))
	copy(out, s.items)
	return out
}

// UnreadCount is derived from the local copy, not re-fetched.
func (s *Store) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for i := range s.items {
		if s.items[i].ReadAt == nil {
			count++
		}
	}
	return count
}

// LastError returns the display-only message from the last failed Activate,
// or "".
func (s *Store) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// SelectItem marks the entry read locally (when unread) before the remote
// call is even issued, then pushes MarkRead fire-and-forget. It returns the
// entry's link href and whether navigation should happen.
func (s *Store) SelectItem(ctx context.Context, notificationID string) (string, bool) {
	s.mu.Lock()

	var selected *dto.NotificationResponse
	for i := range s.items {
		if s.items[i].ID == notificationID {
			selected = &s.items[i]
			break
		}
	}
	if selected == nil {
		s.mu.Unlock()
		return "", false
	}

	wasUnread := selected.ReadAt == nil
	if wasUnread {
		now := s.now()
		selected.ReadAt = &now
	}

	var href string
	hasLink := selected.LinkHref != nil
	if hasLink {
		href = *selected.LinkHref
	}
	s.mu.Unlock()

	if wasUnread {
		go func() {
			if err := s.access.MarkRead(ctx, notificationID); err != nil {
				// Swallowed: no rollback, no user-visible error. The next
				// Activate re-syncs with the server.
				logger.Debug("mark-read push failed", "notification_id", notificationID, "error", err)
			}
		}()
	}

	return href, hasLink
}

// MarkAllRead stamps every locally-unread entry, then pushes fire-and-forget.
func (s *Store) MarkAllRead(ctx context.Context) {
	s.mu.Lock()

	stamped := false
	now := s.now()
	for i := range s.items {
		if s.items[i].ReadAt == nil {
			s.items[i].ReadAt = &now
			stamped = true
		}
	}
	s.mu.Unlock()

	if !stamped {
		return
	}

	go func() {
		if err := s.access.MarkAllRead(ctx); err != nil {
			logger.Debug("mark-all-read push failed", "error", err)
		}
	}()
}
