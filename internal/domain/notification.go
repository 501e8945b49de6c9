package domain

import "time"

// NotificationType drives presentation on the client.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
)

// Notification is a bell-icon entry created as a side effect of admin actions.
type Notification struct {
	ID        string
	UserID    string
	Title     string
	Message   string
	Type      NotificationType
	Read      bool
	Link      string
	CreatedAt time.Time
}
