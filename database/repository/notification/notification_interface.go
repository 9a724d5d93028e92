package notificationRepo

import "niryaat/models"

// NotificationRepository defines methods for in-app notification access.
type NotificationRepository interface {
	// Create inserts a new notification.
	Create(n *models.Notification) error
	// ListForAccount retrieves an account's notifications, newest first.
	ListForAccount(accountID string) ([]models.Notification, error)
	// MarkRead flags a notification as read.
	MarkRead(id, accountID string) error
}
