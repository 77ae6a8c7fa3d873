// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ParkingLocation represents a pin the user dropped for where they parked.
type ParkingLocation struct {
	ID          uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the location.
	UserID      uuid.UUID `json:"user_id"`      // The ID of the user who saved this location.
	Description string    `json:"description"`  // A user-supplied label, e.g., "Main St garage, level 2".
	Latitude    float64   `json:"latitude"`     // The geographic latitude of the pin.
	Longitude   float64   `json:"longitude"`    // The geographic longitude of the pin.
	IsPaid      bool      `json:"is_paid"`      // Whether this is paid parking with a limited duration.
	FreeMinutes int       `json:"free_minutes"` // Minutes of parking the user paid for; zero for free parking.
	CreatedAt   time.Time `json:"created_at"`   // Timestamp of when this location was saved.
	UpdatedAt   time.Time `json:"updated_at"`   // Timestamp of the last modification.
}
