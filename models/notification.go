package models

import "time"

type NotificationType string

const (
	NotificationNewOrder       NotificationType = "New Order"
	NotificationContactInquiry NotificationType = "Contact Inquiry"
)

// Notification is an append-only inbox entry; only IsRead is ever mutated.
type Notification struct {
	ID        string           `gorm:"primaryKey" json:"id"`
	Type      NotificationType `gorm:"type:VARCHAR(20)" json:"type"`
	Subject   string           `json:"subject"`
	From      string           `gorm:"column:sender" json:"from,omitempty"`
	Body      string           `json:"body"`
	CreatedAt time.Time        `json:"createdAt"`
	IsRead    bool             `json:"isRead"`
}
