package models

import "time"

// Notification is an in-app message addressed to an account.
type Notification struct {
	ID        string    `bson:"id" json:"id"`
	AccountID string    `bson:"account_id" json:"accountId"`
	Title     string    `bson:"title" json:"title"`
	Message   string    `bson:"message" json:"message"`
	Type      string    `bson:"type" json:"type"`
	RelatedID string    `bson:"related_id" json:"relatedId,omitempty"`
	IsRead    bool      `bson:"is_read" json:"isRead"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
