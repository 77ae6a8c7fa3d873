package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for generating shareable QR codes.
type QRCodeService interface {
	// GenerateLocationQR generates a PNG QR code encoding a saved parking
	// location, so it can be shared with another device.
	GenerateLocationQR(locationID uuid.UUID, latitude, longitude float64) ([]byte, error)
}
