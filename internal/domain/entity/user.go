// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account.
// It contains only the most fundamental identity information.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email     string    // The user's primary contact email, used as a login identifier.
	Name      string    // The user's display name.
	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}
