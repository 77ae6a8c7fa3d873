// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"parkpin/internal/domain/entity"
	"parkpin/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for refresh token persistence.
var (
	// ErrRefreshTokenNotFound is returned when a refresh token is not found.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
)

// RefreshTokenRepository defines the interface for session persistence.
// Raw tokens never touch the database; only their SHA-256 hashes are stored.
type RefreshTokenRepository interface {
	// Create persists a new refresh token record.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByTokenHash retrieves a refresh token record by its hash.
	// Returns ErrRefreshTokenNotFound if no matching record exists.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteByTokenHash removes a refresh token record by its hash.
	// Deleting an absent token is not an error.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteByUser removes all refresh tokens for a user (logout everywhere).
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
