// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"parkpin/internal/domain/entity"
	"parkpin/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for reminder persistence.
var (
	// ErrReminderNotFound is returned when a reminder is not found.
	ErrReminderNotFound = errors.New("reminder not found")
)

// ReminderRepository is the durable store for pending expiry reminders,
// keyed by parking location ID. It must survive process restarts: what it
// holds is exactly what RecoverOnStartup rearms.
type ReminderRepository interface {
	// Save persists a reminder, replacing any existing one for the same location.
	Save(ctx context.Context, reminder *entity.ParkingReminder) error

	// FindByLocation retrieves the pending reminder for a location.
	// Returns ErrReminderNotFound if no reminder is pending.
	FindByLocation(ctx context.Context, locationID uuid.UUID) (*entity.ParkingReminder, error)

	// FindAll retrieves every pending reminder, in fire-time order.
	FindAll(ctx context.Context) ([]*entity.ParkingReminder, error)

	// DeleteByLocation removes the pending reminder for a location.
	// Deleting an absent reminder is not an error.
	DeleteByLocation(ctx context.Context, locationID uuid.UUID) error
}
