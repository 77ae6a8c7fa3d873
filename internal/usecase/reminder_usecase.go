// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ScheduleResult reports the outcome of a Schedule call.
type ScheduleResult string

const (
	// ScheduleArmed means an expiry warning was persisted and armed.
	ScheduleArmed ScheduleResult = "scheduled"
	// ScheduleSkipped means the duration was too short to warrant a warning.
	// This is an expected outcome, not an error.
	ScheduleSkipped ScheduleResult = "skipped"
)

// ScheduleReminderInput defines the data required to schedule an expiry warning.
type ScheduleReminderInput struct {
	LocationID       uuid.UUID // The parking location the warning belongs to.
	UserID           uuid.UUID // The user whose devices receive the warning.
	Description      string    // Label shown in the delivered notification.
	TotalFreeMinutes int       // Total paid parking duration in minutes.
}

// ReminderScheduler manages parking-expiry warnings: it decides whether a
// warning is warranted, computes its fire time, persists it durably, and arms
// an in-process timer for delivery. Pending warnings survive restarts via
// RecoverOnStartup.
type ReminderScheduler interface {
	// Schedule arms an expiry warning for a parking location, replacing any
	// existing one for the same location. Returns ScheduleSkipped without
	// side effects when the duration is too short to warn about.
	Schedule(ctx context.Context, input *ScheduleReminderInput) (ScheduleResult, error)

	// Cancel disarms and removes any pending warning for a location.
	// Cancelling a location with no pending warning is a successful no-op.
	Cancel(ctx context.Context, locationID uuid.UUID) error

	// RecoverOnStartup reconciles the durable reminder store with live timers
	// after a process restart: past-due reminders are delivered immediately
	// (late is better than never), future ones are rearmed. It must run once,
	// before any other scheduler operation.
	RecoverOnStartup(ctx context.Context) error
}
