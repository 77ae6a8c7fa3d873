package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"parkpin/internal/domain/entity"
	domainerrors "parkpin/internal/domain/errors"
	"parkpin/internal/domain/repository"
	"parkpin/internal/domain/service"
	"parkpin/internal/usecase"

	"github.com/google/uuid"
)

type parkingService struct {
	logger      *slog.Logger
	parkingRepo repository.ParkingRepository
	scheduler   usecase.ReminderScheduler
	qrcodeSvc   service.QRCodeService
}

// NewParkingService creates a new parking service instance
func NewParkingService(
	logger *slog.Logger,
	parkingRepo repository.ParkingRepository,
	scheduler usecase.ReminderScheduler,
	qrcodeSvc service.QRCodeService,
) usecase.ParkingUsecase {
	return &parkingService{
		logger:      logger,
		parkingRepo: parkingRepo,
		scheduler:   scheduler,
		qrcodeSvc:   qrcodeSvc,
	}
}

// SaveLocation saves a dropped pin. For paid parking with a paid duration it
// also schedules an expiry warning; a scheduling failure degrades the result
// (WarningScheduled=false) but never fails the save itself.
func (s *parkingService) SaveLocation(ctx context.Context, userID uuid.UUID, input *usecase.SaveLocationInput) (*usecase.SaveLocationOutput, error) {
	if input == nil || strings.TrimSpace(input.Description) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("description is required")
	}
	if input.IsPaid && input.FreeMinutes <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("paid parking requires a positive free duration")
	}

	location := &entity.ParkingLocation{
		ID:          uuid.New(),
		UserID:      userID,
		Description: strings.TrimSpace(input.Description),
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		IsPaid:      input.IsPaid,
		FreeMinutes: input.FreeMinutes,
	}

	if err := s.parkingRepo.CreateLocation(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to save parking location: %w", err)
	}

	output := &usecase.SaveLocationOutput{Location: location}

	if location.IsPaid && location.FreeMinutes > 0 {
		result, err := s.scheduler.Schedule(ctx, &usecase.ScheduleReminderInput{
			LocationID:       location.ID,
			UserID:           location.UserID,
			Description:      location.Description,
			TotalFreeMinutes: location.FreeMinutes,
		})
		if err != nil {
			// The pin is already saved; the user just won't get a warning.
			s.logger.Warn("failed to schedule expiry warning",
				slog.String("location_id", location.ID.String()),
				slog.Any("error", err),
			)
		} else if result == usecase.ScheduleArmed {
			output.WarningScheduled = true
		}
	}

	return output, nil
}

// GetUserLocations retrieves all saved locations for a user, newest first.
func (s *parkingService) GetUserLocations(ctx context.Context, userID uuid.UUID) ([]*entity.ParkingLocation, error) {
	locations, err := s.parkingRepo.FindLocationsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find parking locations: %w", err)
	}

	return locations, nil
}

// DeleteLocation removes a saved location. Any pending expiry warning is
// cancelled first so a deleted location can never produce a notification.
func (s *parkingService) DeleteLocation(ctx context.Context, userID, locationID uuid.UUID) error {
	location, err := s.findOwnedLocation(ctx, userID, locationID)
	if err != nil {
		return err
	}

	if err := s.scheduler.Cancel(ctx, location.ID); err != nil {
		return fmt.Errorf("failed to cancel expiry warning: %w", err)
	}

	if err := s.parkingRepo.DeleteLocation(ctx, location.ID); err != nil {
		return fmt.Errorf("failed to delete parking location: %w", err)
	}

	return nil
}

// ShareLocationQR renders a saved location as a PNG QR code for sharing.
func (s *parkingService) ShareLocationQR(ctx context.Context, userID, locationID uuid.UUID) ([]byte, error) {
	location, err := s.findOwnedLocation(ctx, userID, locationID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcodeSvc.GenerateLocationQR(location.ID, location.Latitude, location.Longitude)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	return png, nil
}

func (s *parkingService) findOwnedLocation(ctx context.Context, userID, locationID uuid.UUID) (*entity.ParkingLocation, error) {
	location, err := s.parkingRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrParkingLocationNotFound) {
			return nil, domainerrors.ErrParkingLocationNotFound
		}
		return nil, fmt.Errorf("failed to find parking location: %w", err)
	}

	if location.UserID != userID {
		return nil, domainerrors.ErrParkingOwnershipViolation
	}

	return location, nil
}
