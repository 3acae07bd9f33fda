package delivery

import (
	"errors"
	"net/http"

	authdelivery "carecompanion-backend/internal/auth/delivery"
	"carecompanion-backend/internal/notification/usecase"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{notificationUsecase: notificationUsecase}
}

// GetNotifications returns the caller's latest notifications and unread count.
// GET /api/notifications
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	inbox, err := h.notificationUsecase.Inbox(c.Request.Context(), c.GetString(authdelivery.ContextUserID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch notifications"})
		return
	}
	c.JSON(http.StatusOK, inbox)
}

// MarkAsRead flags one of the caller's notifications as read.
// PUT /api/notifications/:id/read
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	id := c.Param("id")
	err := h.notificationUsecase.MarkRead(c.Request.Context(), c.GetString(authdelivery.ContextUserID), id)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update notification"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "isRead": true})
}

// MarkAllAsRead flags every unread notification of the caller as read.
// PUT /api/notifications/read-all
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	updated, err := h.notificationUsecase.MarkAllRead(c.Request.Context(), c.GetString(authdelivery.ContextUserID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read", "updated": updated})
}
