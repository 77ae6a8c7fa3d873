// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"parkpin/internal/domain/entity"
	"parkpin/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for parking location persistence.
var (
	// ErrParkingLocationNotFound is returned when a parking location is not found.
	ErrParkingLocationNotFound = errors.New("parking location not found")
)

// ParkingRepository defines the interface for parking-location database operations.
type ParkingRepository interface {
	// CreateLocation persists a new parking location for a user.
	CreateLocation(ctx context.Context, location *entity.ParkingLocation) error

	// FindLocationByID retrieves a parking location by its unique ID.
	// Returns ErrParkingLocationNotFound if no such location exists.
	FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.ParkingLocation, error)

	// FindLocationsByUser retrieves all saved parking locations for a user,
	// newest first.
	FindLocationsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ParkingLocation, error)

	// DeleteLocation removes a parking location by its ID.
	DeleteLocation(ctx context.Context, id uuid.UUID) error
}
