// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"parkpin/internal/domain/entity"
	"parkpin/internal/errors"
)

// Domain-specific errors for authentication persistence.
var (
	// ErrAuthNotFound is returned when an authentication record is not found.
	ErrAuthNotFound = errors.New("authentication not found")
)

// AuthRepository defines the interface for credential-related database operations.
type AuthRepository interface {
	// CreateAuthentication persists a new credential for a user.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication retrieves a credential by provider and provider user ID
	// (the email address for the "email" provider).
	// Returns ErrAuthNotFound if no matching credential exists.
	FindAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error)
}
