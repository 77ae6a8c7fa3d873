package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParkingLocationModel is the GORM-specific struct for the 'parking_locations' table.
type ParkingLocationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"type:varchar(255);not null"`
	Latitude    float64   `gorm:"type:double precision;not null"`
	Longitude   float64   `gorm:"type:double precision;not null"`
	IsPaid      bool      `gorm:"not null;default:false"`
	FreeMinutes int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ParkingLocationModel) TableName() string {
	return "parking_locations"
}
