package model

import (
	"time"

	"github.com/google/uuid"
)

// ParkingReminderModel is the GORM-specific struct for the 'parking_reminders'
// table. The location ID is the primary key: at most one pending reminder
// exists per parking location, and a new schedule replaces the old row.
type ParkingReminderModel struct {
	LocationID  uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"type:varchar(255);not null"`
	FireAt      time.Time `gorm:"not null;index"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ParkingReminderModel) TableName() string {
	return "parking_reminders"
}
