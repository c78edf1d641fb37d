package inbox

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cornerstone_backend/internal/services/dto"
)

func TestPanelViewRender(t *testing.T) {
	now := time.Now()
	access := newFakeAccess(fixtureItems(now))
	view := NewPanelView(NewStore(access))
	view.Activate(context.Background())

	model := view.Render(now)

	require.Len(t, model.Rows, 3)
	assert.Equal(t, 2, model.UnreadCount)
	assert.True(t, model.ShowMarkAll)
	assert.Empty(t, model.EmptyMessage)
	assert.Empty(t, model.ErrorMessage)

	first := model.Rows[0]
	assert.Equal(t, "Invoice overdue", first.Title)
	assert.Equal(t, "5m ago", first.TimeLabel)
	assert.False(t, first.Read)
	assert.True(t, first.HasLink)
	assert.Equal(t, "/finance/123", first.LinkHref)
	assert.Equal(t, "Open invoice", first.LinkLabel)

	last := model.Rows[2]
	assert.True(t, last.Read)
	assert.Equal(t, "3d ago", last.TimeLabel)
}

func TestPanelViewEmptyState(t *testing.T) {
	access := newFakeAccess(nil)
	view := NewPanelView(NewStore(access))
	view.Activate(context.Background())

	model := view.Render(time.Now())

	assert.Empty(t, model.Rows)
	assert.False(t, model.ShowMarkAll)
	assert.Equal(t, PanelEmptyMessage, model.EmptyMessage)
}

func TestPanelViewErrorState(t *testing.T) {
	access := newFakeAccess(nil)
	access.listErr = errors.New("temporarily unavailable")
	view := NewPanelView(NewStore(access))
	view.Activate(context.Background())

	model := view.Render(time.Now())

	assert.Empty(t, model.Rows)
	assert.Equal(t, "temporarily unavailable", model.ErrorMessage)
	// Error replaces the empty-state copy, never both at once.
	assert.Empty(t, model.EmptyMessage)
}

func TestPanelViewMarkAllHidesAffordance(t *testing.T) {
	now := time.Now()
	access := newFakeAccess(fixtureItems(now))
	view := NewPanelView(NewStore(access))
	view.Activate(context.Background())

	view.MarkAllRead(context.Background())

	model := view.Render(now)
	assert.Zero(t, model.UnreadCount)
	assert.False(t, model.ShowMarkAll)
}

func TestTrayViewRender(t *testing.T) {
	now := time.Now()
	access := newFakeAccess(fixtureItems(now))
	view := NewTrayView(NewStore(access))
	view.Activate(context.Background())

	model := view.Render(now)

	assert.Equal(t, 2, model.Badge)
	assert.Len(t, model.Rows, 3)
	assert.False(t, model.Overflow)
	assert.Equal(t, PanelHref, model.ViewAllHref)
}

func TestTrayViewCapsRows(t *testing.T) {
	now := time.Now()
	var items []dto.NotificationResponse
	for i := 0; i < TrayRowLimit+4; i++ {
		items = append(items, dto.NotificationResponse{
			ID:        fmt.Sprintf("n-%d", i),
			OwnerID:   "u-1",
			Title:     fmt.Sprintf("Event %d", i),
			CreatedAt: now.Add(-time.Duration(i) * time.Minute),
		})
	}
	access := newFakeAccess(items)
	view := NewTrayView(NewStore(access))
	view.Activate(context.Background())

	model := view.Render(now)

	assert.Len(t, model.Rows, TrayRowLimit)
	assert.True(t, model.Overflow)
	// Badge counts everything, not just the visible rows.
	assert.Equal(t, TrayRowLimit+4, model.Badge)
}

func TestTrayViewEmptyState(t *testing.T) {
	access := newFakeAccess(nil)
	view := NewTrayView(NewStore(access))
	view.Activate(context.Background())

	model := view.Render(time.Now())

	assert.Zero(t, model.Badge)
	assert.Equal(t, TrayEmptyMessage, model.EmptyMessage)
}

func TestViewsShareOneStore(t *testing.T) {
	now := time.Now()
	access := newFakeAccess(fixtureItems(now))
	store := NewStore(access)
	panel := NewPanelView(store)
	tray := NewTrayView(store)
	panel.Activate(context.Background())

	href, ok := tray.Select(context.Background(), "n-3")
	assert.True(t, ok)
	assert.Equal(t, "/finance/123", href)

	// Both surfaces read the same copy, so the panel sees the stamp at once.
	assert.Equal(t, 1, panel.Render(now).UnreadCount)
	assert.Equal(t, 1, tray.Render(now).Badge)
}
