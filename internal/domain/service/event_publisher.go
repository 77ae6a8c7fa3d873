package service

import (
	"context"
)

// Reminder event statuses.
const (
	ReminderEventFired     = "fired"     // Delivered at the scheduled fire time.
	ReminderEventRecovered = "recovered" // Delivered late by the startup recovery pass.
)

// ReminderEvent describes the delivery of a parking-expiry warning, for
// downstream consumers (analytics, auditing).
type ReminderEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing.
	LocationID  string `json:"location_id"`
	UserID      string `json:"user_id"`
	Description string `json:"description"`
	FiredAt     int64  `json:"fired_at"` // Epoch milliseconds, UTC.
	Status      string `json:"status"`   // "fired" or "recovered".
	TotalSent   int    `json:"total_sent"`
	TotalFailed int    `json:"total_failed"`
}

// EventPublisher defines the interface for publishing reminder events.
type EventPublisher interface {
	// PublishReminderEvent publishes a reminder delivery event.
	PublishReminderEvent(ctx context.Context, event *ReminderEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
