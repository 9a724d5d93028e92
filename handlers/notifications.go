package handlers

import (
	"net/http"

	notificationRepo "niryaat/database/repository/notification"
	"niryaat/middleware"
	"niryaat/models"
	"niryaat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler exposes in-app notifications.
type NotificationHandler struct {
	Notifications notificationRepo.NotificationRepository
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(notifications notificationRepo.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{Notifications: notifications}
}

// ListNotificationsHandler lists the caller's notifications, newest first.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	logger := getLogger(c)
	mgr := middleware.SessionFromContext(c)

	items, err := h.Notifications.ListForAccount(mgr.AccountID())
	if err != nil {
		logger.Error("Failed to list notifications", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to load notifications, please try again", "")
		return
	}
	if items == nil {
		items = []models.Notification{}
	}
	c.JSON(http.StatusOK, gin.H{"notifications": items})
}

// MarkNotificationReadHandler flags one of the caller's notifications as read.
func (h *NotificationHandler) MarkNotificationReadHandler(c *gin.Context) {
	logger := getLogger(c)
	mgr := middleware.SessionFromContext(c)

	id := c.Param("id")
	if err := h.Notifications.MarkRead(id, mgr.AccountID()); err != nil {
		logger.Error("Failed to mark notification read", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to update notification, please try again", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
