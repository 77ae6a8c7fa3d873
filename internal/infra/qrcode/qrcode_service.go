// Package qrcode renders saved parking locations as shareable QR codes.
package qrcode

import (
	"encoding/json"
	"fmt"

	"parkpin/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code payload
type QRCodeData struct {
	LocationID string  `json:"location_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	MapURL     string  `json:"map_url,omitempty"`
	Type       string  `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GenerateLocationQR generates a PNG QR code encoding a saved parking location
func (s *qrcodeService) GenerateLocationQR(locationID uuid.UUID, latitude, longitude float64) ([]byte, error) {
	data := QRCodeData{
		LocationID: locationID.String(),
		Latitude:   latitude,
		Longitude:  longitude,
		Type:       "parking_location",
	}
	if s.baseURL != "" {
		data.MapURL = fmt.Sprintf("%s?lat=%f&lng=%f", s.baseURL, latitude, longitude)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
