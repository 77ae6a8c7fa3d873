package postgres

import (
	"context"

	"parkpin/internal/domain/entity"
	domainerrors "parkpin/internal/domain/errors"
	"parkpin/internal/domain/repository"
	"parkpin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// reminderRepository implements the repository.ReminderRepository interface.
// The table is keyed by location ID, so Save is an upsert: scheduling a
// location that already has a pending reminder replaces it in one statement.
type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository is the constructor for reminderRepository.
func NewReminderRepository(db *gorm.DB) repository.ReminderRepository {
	return &reminderRepository{
		db: db,
	}
}

// Save persists a reminder, replacing any existing one for the same location.
func (repo *reminderRepository) Save(ctx context.Context, reminder *entity.ParkingReminder) error {
	reminderM := fromReminderDomain(reminder)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "location_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_id", "description", "fire_at", "created_at"}),
		}).
		Create(reminderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrParkingLocationNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save reminder")
	}

	return nil
}

// FindByLocation retrieves the pending reminder for a location.
func (repo *reminderRepository) FindByLocation(ctx context.Context, locationID uuid.UUID) (*entity.ParkingReminder, error) {
	var reminderM model.ParkingReminderModel

	if err := repo.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		First(&reminderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReminderNotFound
		}

		return nil, errors.Wrap(err, "failed to find reminder by location")
	}

	return toReminderDomain(&reminderM), nil
}

// FindAll retrieves every pending reminder, in fire-time order.
func (repo *reminderRepository) FindAll(ctx context.Context) ([]*entity.ParkingReminder, error) {
	var reminderModels []*model.ParkingReminderModel

	if err := repo.db.WithContext(ctx).
		Order("fire_at ASC").
		Find(&reminderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load pending reminders")
	}

	reminders := make([]*entity.ParkingReminder, 0, len(reminderModels))
	for _, reminderM := range reminderModels {
		reminders = append(reminders, toReminderDomain(reminderM))
	}

	return reminders, nil
}

// DeleteByLocation removes the pending reminder for a location.
// Deleting an absent reminder is not an error.
func (repo *reminderRepository) DeleteByLocation(ctx context.Context, locationID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Delete(&model.ParkingReminderModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete reminder by location")
	}

	return nil
}

// --- Mapper Functions ---

// toReminderDomain converts a GORM ParkingReminderModel to a domain ParkingReminder entity.
func toReminderDomain(data *model.ParkingReminderModel) *entity.ParkingReminder {
	if data == nil {
		return nil
	}

	return &entity.ParkingReminder{
		LocationID:  data.LocationID,
		UserID:      data.UserID,
		Description: data.Description,
		FireAt:      data.FireAt,
		CreatedAt:   data.CreatedAt,
	}
}

// fromReminderDomain converts a domain ParkingReminder entity to a GORM ParkingReminderModel.
func fromReminderDomain(data *entity.ParkingReminder) *model.ParkingReminderModel {
	if data == nil {
		return nil
	}

	return &model.ParkingReminderModel{
		LocationID:  data.LocationID,
		UserID:      data.UserID,
		Description: data.Description,
		FireAt:      data.FireAt,
		CreatedAt:   data.CreatedAt,
	}
}
