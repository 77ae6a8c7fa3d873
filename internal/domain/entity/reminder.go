// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ParkingReminder is a pending expiry warning for a paid parking location.
// At most one reminder exists per location; the persisted set is the sole
// source of truth for what must be rearmed after a process restart. In-memory
// timer handles are a derived, disposable cache.
type ParkingReminder struct {
	LocationID  uuid.UUID `json:"location_id"` // The parking location this reminder belongs to; unique key.
	UserID      uuid.UUID `json:"user_id"`     // The user whose devices receive the warning.
	Description string    `json:"description"` // Label of the parking location, included in the delivered message.
	FireAt      time.Time `json:"fire_at"`     // Absolute instant at which the warning must be delivered.
	CreatedAt   time.Time `json:"created_at"`  // Timestamp of when this reminder was scheduled.
}

// FireAtMillis returns the fire time as epoch milliseconds (UTC).
func (r *ParkingReminder) FireAtMillis() int64 {
	return r.FireAt.UnixMilli()
}

// Due reports whether the reminder's fire time has already passed at now.
func (r *ParkingReminder) Due(now time.Time) bool {
	return !r.FireAt.After(now)
}
