package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"eventbackend/internal/middleware"
	"eventbackend/internal/service"
)

type NotificationHandler interface {
	List(c *gin.Context)
	MarkRead(c *gin.Context)
}

type notificationHandler struct {
	notifications service.NotificationService
	log           *logrus.Logger
}

func NewNotificationHandler(notifications service.NotificationService, log *logrus.Logger) NotificationHandler {
	return &notificationHandler{notifications: notifications, log: log}
}

func (h *notificationHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(int64)
	notifications, err := h.notifications.ListForUser(userID)
	if err != nil {
		h.log.Errorf("Failed to list notifications for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func (h *notificationHandler) MarkRead(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification ID"})
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(int64)
	if err := h.notifications.MarkRead(id, userID); err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.log.Errorf("Failed to mark notification %d read: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}
