package delivery

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	authdelivery "carecompanion-backend/internal/auth/delivery"
	"carecompanion-backend/internal/notification/usecase"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifications struct {
	inbox   *usecase.Inbox
	err     error
	readFor string
}

func (f *fakeNotifications) Inbox(_ context.Context, caretakerID string) (*usecase.Inbox, error) {
	f.readFor = caretakerID
	return f.inbox, f.err
}

func (f *fakeNotifications) MarkRead(_ context.Context, caretakerID, id string) error {
	f.readFor = caretakerID
	if id == "missing" {
		return usecase.ErrNotFound
	}
	return f.err
}

func (f *fakeNotifications) MarkAllRead(_ context.Context, caretakerID string) (int64, error) {
	f.readFor = caretakerID
	return 3, f.err
}

func newRouter(uc usecase.NotificationUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewNotificationHandler(uc)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(authdelivery.ContextUserID, "c1") })
	r.GET("/api/notifications", h.GetNotifications)
	r.PUT("/api/notifications/read-all", h.MarkAllAsRead)
	r.PUT("/api/notifications/:id/read", h.MarkAsRead)
	return r
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestGetNotifications(t *testing.T) {
	uc := &fakeNotifications{inbox: &usecase.Inbox{
		Notifications: []usecase.NotificationView{{ID: "n1", Message: "ALERT"}},
		UnreadCount:   1,
	}}
	rec := serve(newRouter(uc), http.MethodGet, "/api/notifications")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "c1", uc.readFor)

	var body struct {
		Notifications []map[string]any `json:"notifications"`
		UnreadCount   int              `json:"unreadCount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.UnreadCount)
	assert.Equal(t, "n1", body.Notifications[0]["id"])

	failing := &fakeNotifications{err: errors.New("db down")}
	assert.Equal(t, http.StatusInternalServerError, serve(newRouter(failing), http.MethodGet, "/api/notifications").Code)
}

func TestMarkAsRead(t *testing.T) {
	r := newRouter(&fakeNotifications{})
	assert.Equal(t, http.StatusOK, serve(r, http.MethodPut, "/api/notifications/n1/read").Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodPut, "/api/notifications/missing/read").Code)
}

func TestMarkAllAsRead(t *testing.T) {
	rec := serve(newRouter(&fakeNotifications{}), http.MethodPut, "/api/notifications/read-all")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"updated":3`)
}
