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
)

// parkingRepository implements the repository.ParkingRepository interface using GORM.
type parkingRepository struct {
	db *gorm.DB
}

// NewParkingRepository is the constructor for parkingRepository.
func NewParkingRepository(db *gorm.DB) repository.ParkingRepository {
	return &parkingRepository{
		db: db,
	}
}

// CreateLocation persists a new parking location for a user.
func (repo *parkingRepository) CreateLocation(ctx context.Context, location *entity.ParkingLocation) error {
	locationM := fromParkingLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required location information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create parking location")
	}

	location.ID = locationM.ID
	location.CreatedAt = locationM.CreatedAt
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// FindLocationByID retrieves a parking location by its unique ID.
func (repo *parkingRepository) FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.ParkingLocation, error) {
	var locationM model.ParkingLocationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrParkingLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find parking location by ID")
	}

	return toParkingLocationDomain(&locationM), nil
}

// FindLocationsByUser retrieves all saved parking locations for a user, newest first.
func (repo *parkingRepository) FindLocationsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ParkingLocation, error) {
	var locationModels []*model.ParkingLocationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find parking locations by user")
	}

	locations := make([]*entity.ParkingLocation, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toParkingLocationDomain(locationM))
	}

	return locations, nil
}

// DeleteLocation removes a parking location by its ID (soft delete).
func (repo *parkingRepository) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ParkingLocationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete parking location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrParkingLocationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toParkingLocationDomain converts a GORM ParkingLocationModel to a domain ParkingLocation entity.
func toParkingLocationDomain(data *model.ParkingLocationModel) *entity.ParkingLocation {
	if data == nil {
		return nil
	}

	return &entity.ParkingLocation{
		ID:          data.ID,
		UserID:      data.UserID,
		Description: data.Description,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		IsPaid:      data.IsPaid,
		FreeMinutes: data.FreeMinutes,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromParkingLocationDomain converts a domain ParkingLocation entity to a GORM ParkingLocationModel.
func fromParkingLocationDomain(data *entity.ParkingLocation) *model.ParkingLocationModel {
	if data == nil {
		return nil
	}

	return &model.ParkingLocationModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Description: data.Description,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		IsPaid:      data.IsPaid,
		FreeMinutes: data.FreeMinutes,
	}
}
