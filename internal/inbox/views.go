package inbox

import (
	"context"
	"time"

	"cornerstone_backend/internal/services/dto"
	"cornerstone_backend/pkg/timeago"
)

const (
	// TrayRowLimit caps the dropdown; the panel shows everything the store
	// holds.
	TrayRowLimit = 8

	PanelEmptyMessage = "No notifications"
	TrayEmptyMessage  = "You're all caught up"

	// PanelHref is where the tray's view-all link points.
	PanelHref = "/notifications"
)

// Row is one rendered notification, shared by both surfaces.
type Row struct {
	ID        string
	Title     string
	Body      string
	Category  string
	TimeLabel string
	Read      bool
	LinkHref  string
	LinkLabel string
	HasLink   bool
}

// PanelModel is the full-page surface: every row, a mark-all affordance and
// room for body text and link labels.
type PanelModel struct {
	Rows         []Row
	UnreadCount  int
	ShowMarkAll  bool
	EmptyMessage string
	ErrorMessage string
}

// TrayModel is the compact topbar dropdown: badge, a capped row list and a
// link to the panel.
type TrayModel struct {
	Badge        int
	Rows         []Row
	Overflow     bool
	ViewAllHref  string
	EmptyMessage string
	ErrorMessage string
}

// PanelView renders the notifications page from a store.
type PanelView struct {
	store *Store
}

func NewPanelView(store *Store) *PanelView {
	return &PanelView{store: store}
}

func (v *PanelView) Activate(ctx context.Context) {
	v.store.Activate(ctx)
}

func (v *PanelView) Render(now time.Time) PanelModel {
	items := v.store.Items()
	unread := v.store.UnreadCount()

	model := PanelModel{
		Rows:         make([]Row, 0, len(items)),
		UnreadCount:  unread,
		ShowMarkAll:  unread > 0,
		ErrorMessage: v.store.LastError(),
	}
	for i := range items {
		model.Rows = append(model.Rows, buildRow(&items[i], now))
	}
	if len(model.Rows) == 0 && model.ErrorMessage == "" {
		model.EmptyMessage = PanelEmptyMessage
	}
	return model
}

// Select marks the row read and reports where to navigate, if anywhere.
func (v *PanelView) Select(ctx context.Context, notificationID string) (string, bool) {
	return v.store.SelectItem(ctx, notificationID)
}

func (v *PanelView) MarkAllRead(ctx context.Context) {
	v.store.MarkAllRead(ctx)
}

// TrayView renders the topbar dropdown from a store.
type TrayView struct {
	store *Store
}

func NewTrayView(store *Store) *TrayView {
	return &TrayView{store: store}
}

// Activate is called when the dropdown opens; the badge keeps whatever the
// last activation produced until then.
func (v *TrayView) Activate(ctx context.Context) {
	v.store.Activate(ctx)
}

func (v *TrayView) Render(now time.Time) TrayModel {
	items := v.store.Items()

	model := TrayModel{
		Badge:        v.store.UnreadCount(),
		ViewAllHref:  PanelHref,
		ErrorMessage: v.store.LastError(),
	}

	shown := items
	if len(shown) > TrayRowLimit {
		shown = shown[:TrayRowLimit]
		model.Overflow = true
	}
	model.Rows = make([]Row, 0, len(shown))
	for i := range shown {
		model.Rows = append(model.Rows, buildRow(&shown[i], now))
	}
	if len(model.Rows) == 0 && model.ErrorMessage == "" {
		model.EmptyMessage = TrayEmptyMessage
	}
	return model
}

func (v *TrayView) Select(ctx context.Context, notificationID string) (string, bool) {
	return v.store.SelectItem(ctx, notificationID)
}

func (v *TrayView) MarkAllRead(ctx context.Context) {
	v.store.MarkAllRead(ctx)
}

func buildRow(item *dto.NotificationResponse, now time.Time) Row {
	row := Row{
		ID:        item.ID,
		Title:     item.Title,
		TimeLabel: timeago.Format(item.CreatedAt, now),
		Read:      item.ReadAt != nil,
		HasLink:   item.LinkHref != nil,
	}
	if item.Body != nil {
		row.Body = *item.Body
	}
	if item.Category != nil {
		row.Category = *item.Category
	}
	if item.LinkHref != nil {
		row.LinkHref = *item.LinkHref
	}
	if item.LinkLabel != nil {
		row.LinkLabel = *item.LinkLabel
		// A label with no href renders as plain text; only the href decides
		// whether selecting navigates.
	}
	return row
}
