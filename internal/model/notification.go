package model

import "time"

// Notification types.
const (
	NotificationReminder     = "reminder"
	NotificationUpdate       = "update"
	NotificationConfirmation = "confirmation"
)

// Notification is an in-app message addressed to a single user.
type Notification struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	IsRead    bool      `json:"isRead"`
}
