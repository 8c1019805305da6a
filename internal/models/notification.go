package models

import "time"

// Notification priorities.
const (
	NotificationPriorityLow    = "low"
	NotificationPriorityNormal = "normal"
	NotificationPriorityHigh   = "high"
)

// Notification is a per-recipient in-app message. Rows past ExpiresAt are
// hidden from queries and eventually purged.
type Notification struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user_id"`
	Type       string     `json:"type"`
	Category   string     `json:"category,omitempty"`
	Priority   string     `json:"priority"`
	Title      string     `json:"title"`
	Message    string     `json:"message"`
	Read       bool       `json:"read"`
	ReadAt     *time.Time `json:"read_at,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	EntityID   int64      `json:"entity_id,omitempty"`
	EntityType string     `json:"entity_type,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
