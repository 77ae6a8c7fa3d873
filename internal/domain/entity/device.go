// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice is a phone registered to receive parking-expiry warnings.
// A user with no active device cannot have warnings scheduled for them.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the device.
	UserID    uuid.UUID `json:"user_id"`    // The ID of the user who owns this device.
	FCMToken  string    `json:"fcm_token"`  // Firebase Cloud Messaging token push warnings are addressed to.
	DeviceID  string    `json:"device_id"`  // Unique device identifier supplied by the client.
	Platform  string    `json:"platform"`   // Device platform (ios, android).
	IsActive  bool      `json:"is_active"`  // Whether this device currently receives warnings.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when this device was registered.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last modification.
}
