package usecase

import (
	"context"

	"parkpin/internal/domain/entity"

	"github.com/google/uuid"
)

// SaveLocationInput represents the input for saving a parking location.
type SaveLocationInput struct {
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	IsPaid      bool    `json:"is_paid"`
	FreeMinutes int     `json:"free_minutes"`
}

// SaveLocationOutput returns the saved location and whether an expiry warning
// was armed for it. WarningScheduled is false both when the duration did not
// qualify and when scheduling failed; a failure never blocks the save.
type SaveLocationOutput struct {
	Location         *entity.ParkingLocation `json:"location"`
	WarningScheduled bool                    `json:"warning_scheduled"`
}

// ParkingUsecase defines the interface for parking-location management.
type ParkingUsecase interface {
	// SaveLocation saves a dropped pin. For paid parking with a qualifying
	// free duration it also schedules an expiry warning.
	SaveLocation(ctx context.Context, userID uuid.UUID, input *SaveLocationInput) (*SaveLocationOutput, error)

	// GetUserLocations retrieves all saved locations for a user, newest first.
	GetUserLocations(ctx context.Context, userID uuid.UUID) ([]*entity.ParkingLocation, error)

	// DeleteLocation removes a saved location and cancels any pending warning.
	DeleteLocation(ctx context.Context, userID, locationID uuid.UUID) error

	// ShareLocationQR renders a saved location as a PNG QR code.
	ShareLocationQR(ctx context.Context, userID, locationID uuid.UUID) ([]byte, error)
}
