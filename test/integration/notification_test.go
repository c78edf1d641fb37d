package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cornerstone_backend/test/helpers"
)

type notificationRow struct {
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

type listResponse struct {
	Notifications []notificationRow `json:"notifications"`
	Error         string            `json:"error"`
}

func createNotification(t *testing.T, ts *helpers.TestServer, ownerID, title string, extra map[string]interface{}) string {
	body := map[string]interface{}{
		"owner_id": ownerID,
		"title":    title,
	}
	for k, v := range extra {
		body[k] = v
	}

	res, bodyStr := ts.SendWorkflowRequest(t, http.MethodPost, "/api/v1/notifications", workflowToken, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "create should succeed, got: %s", bodyStr)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))
	require.NotEmpty(t, created.ID)
	return created.ID
}

func TestNotificationLifecycle(t *testing.T) {
	ts := GetTestServer(t)

	tokenU, userU := helpers.CreateAndLoginMember(t, ts)
	tokenV, _ := helpers.CreateAndLoginMember(t, ts)

	// A billing workflow raises a notification for U with a link target.
	id := createNotification(t, ts, userU.ID, "Invoice overdue", map[string]interface{}{
		"body":       "Invoice #123 is 5 days overdue",
		"category":   "billing",
		"link_href":  "/finance/123",
		"link_label": "Open invoice",
	})

	// U sees it unread with the link intact.
	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/notifications", tokenU, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var list listResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	require.Len(t, list.Notifications, 1)
	row := list.Notifications[0]
	assert.Equal(t, id, row.ID)
	assert.Equal(t, "Invoice overdue", row.Title)
	assert.Nil(t, row.ReadAt)
	require.NotNil(t, row.LinkHref)
	assert.Equal(t, "/finance/123", *row.LinkHref)

	// Unread count agrees.
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/notifications/unread-count", tokenU, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var unread struct {
		Count int `json:"unread_count"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &unread))
	assert.Equal(t, 1, unread.Count)

	// U opens it.
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/notifications/"+id+"/read", tokenU, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/notifications", tokenU, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	require.Len(t, list.Notifications, 1)
	require.NotNil(t, list.Notifications[0].ReadAt)
	firstStamp := *list.Notifications[0].ReadAt

	// Marking again does not move the stamp.
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/notifications/"+id+"/read", tokenU, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/notifications", tokenU, nil)
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	assert.True(t, firstStamp.Equal(*list.Notifications[0].ReadAt))

	// V never sees U's rows.
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/notifications", tokenV, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	assert.Empty(t, list.Notifications)
}

func TestNotificationCrossOwnerMarking(t *testing.T) {
	ts := GetTestServer(t)

	_, userU := helpers.CreateAndLoginMember(t, ts)
	tokenV, _ := helpers.CreateAndLoginMember(t, ts)

	id := createNotification(t, ts, userU.ID, "Private", nil)

	// V marking U's row: success on the surface, zero effect underneath.
	// Same response as marking a row that does not exist at all.
	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/notifications/"+id+"/read", tokenV, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	missingID := "00000000-0000-0000-0000-000000000000"
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/notifications/"+missingID+"/read", tokenV, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var stillUnread int64
	require.NoError(t, ts.DB.Raw(
		"SELECT COUNT(*) FROM notifications WHERE owner_id = ? AND read_at IS NULL", userU.ID,
	).Scan(&stillUnread).Error)
	assert.EqualValues(t, 1, stillUnread)
}

func TestNotificationAnonymousList(t *testing.T) {
	ts := GetTestServer(t)

	// No token: an empty list with a 200, not a 401.
	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/notifications", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var list listResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	assert.Empty(t, list.Notifications)
	assert.Empty(t, list.Error)

	// Mutations still require a principal.
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/notifications/read-all", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestNotificationMarkAllRead(t *testing.T) {
	ts := GetTestServer(t)

	tokenU, userU := helpers.CreateAndLoginMember(t, ts)
	_, userV := helpers.CreateAndLoginMember(t, ts)

	for _, title := range []string{"One", "Two", "Three"} {
		createNotification(t, ts, userU.ID, title, nil)
	}
	createNotification(t, ts, userV.ID, "Not yours", nil)

	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/notifications/read-all", tokenU, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/notifications/unread-count", tokenU, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var unread struct {
		Count int `json:"unread_count"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &unread))
	assert.Zero(t, unread.Count)

	// V's row is untouched.
	var count int64
	require.NoError(t, ts.DB.Raw(
		"SELECT COUNT(*) FROM notifications WHERE owner_id = ? AND read_at IS NULL", userV.ID,
	).Scan(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestNotificationListCap(t *testing.T) {
	ts := GetTestServer(t)

	tokenU, userU := helpers.CreateAndLoginMember(t, ts)

	// 55 rows inserted directly; the API must stop at the cap, newest first.
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 55; i++ {
		err := ts.DB.Exec(
			"INSERT INTO notifications (id, owner_id, title, created_at, updated_at) VALUES (uuid_generate_v4(), ?, ?, ?, ?)",
			userU.ID, "Bulk", base.Add(time.Duration(i)*time.Second), base.Add(time.Duration(i)*time.Second),
		).Error
		require.NoError(t, err)
	}

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/notifications", tokenU, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var list listResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	assert.Len(t, list.Notifications, 50)
	for i := 1; i < len(list.Notifications); i++ {
		assert.False(t, list.Notifications[i].CreatedAt.After(list.Notifications[i-1].CreatedAt))
	}
}

func TestNotificationCreateRequiresWorkflowToken(t *testing.T) {
	ts := GetTestServer(t)

	tokenU, userU := helpers.CreateAndLoginMember(t, ts)

	body := map[string]interface{}{"owner_id": userU.ID, "title": "Sneaky"}

	// A user session is not a workflow credential.
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/notifications", tokenU, body)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendWorkflowRequest(t, http.MethodPost, "/api/v1/notifications", "wrong-token", body)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestNotificationCreateUnknownOwner(t *testing.T) {
	ts := GetTestServer(t)

	body := map[string]interface{}{
		"owner_id": "9f3b2c1a-0000-0000-0000-000000000001",
		"title":    "Orphan",
	}
	res, _ := ts.SendWorkflowRequest(t, http.MethodPost, "/api/v1/notifications", workflowToken, body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
