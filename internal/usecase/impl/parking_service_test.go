package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"parkpin/internal/domain/entity"
	domainerrors "parkpin/internal/domain/errors"
	"parkpin/internal/domain/repository"
	mockRepo "parkpin/internal/mocks/repository"
	mockService "parkpin/internal/mocks/service"
	mockUsecase "parkpin/internal/mocks/usecase"
	"parkpin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// parkingServiceFixtures holds all test dependencies for parking service tests.
type parkingServiceFixtures struct {
	service     usecase.ParkingUsecase
	parkingRepo *mockRepo.MockParkingRepository
	scheduler   *mockUsecase.MockReminderScheduler
	qrcodeSvc   *mockService.MockQRCodeService
}

func createTestParkingService(t *testing.T) parkingServiceFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	parkingRepo := mockRepo.NewMockParkingRepository(t)
	scheduler := mockUsecase.NewMockReminderScheduler(t)
	qrcodeSvc := mockService.NewMockQRCodeService(t)

	service := NewParkingService(logger, parkingRepo, scheduler, qrcodeSvc)

	return parkingServiceFixtures{
		service:     service,
		parkingRepo: parkingRepo,
		scheduler:   scheduler,
		qrcodeSvc:   qrcodeSvc,
	}
}

func saveLocationInput(isPaid bool, freeMinutes int) *usecase.SaveLocationInput {
	return &usecase.SaveLocationInput{
		Description: "Main St garage",
		Latitude:    25.0330,
		Longitude:   121.5654,
		IsPaid:      isPaid,
		FreeMinutes: freeMinutes,
	}
}

func TestParkingService_SaveLocation_FreeParking(t *testing.T) {
	fx := createTestParkingService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.parkingRepo.EXPECT().
		CreateLocation(ctx, mock.AnythingOfType("*entity.ParkingLocation")).
		Return(nil)

	output, err := fx.service.SaveLocation(ctx, userID, saveLocationInput(false, 0))
	require.NoError(t, err)
	assert.Equal(t, userID, output.Location.UserID)
	assert.False(t, output.WarningScheduled)
}

func TestParkingService_SaveLocation_PaidParkingSchedulesWarning(t *testing.T) {
	fx := createTestParkingService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.parkingRepo.EXPECT().
		CreateLocation(ctx, mock.AnythingOfType("*entity.ParkingLocation")).
		Return(nil)

	fx.scheduler.EXPECT().
		Schedule(ctx, mock.AnythingOfType("*usecase.ScheduleReminderInput")).
		Run(func(_ context.Context, input *usecase.ScheduleReminderInput) {
			assert.Equal(t, userID, input.UserID)
			assert.Equal(t, "Main St garage", input.Description)
			assert.Equal(t, 60, input.TotalFreeMinutes)
		}).
		Return(usecase.ScheduleArmed, nil)

	output, err := fx.service.SaveLocation(ctx, userID, saveLocationInput(true, 60))
	require.NoError(t, err)
	assert.True(t, output.WarningScheduled)
}

func TestParkingService_SaveLocation_ShortDurationSkipsWarning(t *testing.T) {
	fx := createTestParkingService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.parkingRepo.EXPECT().
		CreateLocation(ctx, mock.AnythingOfType("*entity.ParkingLocation")).
		Return(nil)

	fx.scheduler.EXPECT().
		Schedule(ctx, mock.Anything).
		Return(usecase.ScheduleSkipped, nil)

	output, err := fx.service.SaveLocation(ctx, userID, saveLocationInput(true, 3))
	require.NoError(t, err)
	assert.False(t, output.WarningScheduled)
}

func TestParkingService_SaveLocation_ScheduleFailureDoesNotBlockSave(t *testing.T) {
	fx := createTestParkingService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.parkingRepo.EXPECT().
		CreateLocation(ctx, mock.AnythingOfType("*entity.ParkingLocation")).
		Return(nil)

	fx.scheduler.EXPECT().
		Schedule(ctx, mock.Anything).
		Return(usecase.ScheduleResult(""), domainerrors.ErrNotificationPermissionDenied)

	output, err := fx.service.SaveLocation(ctx, userID, saveLocationInput(true, 60))
	require.NoError(t, err)
	assert.NotNil(t, output.Location)
	assert.False(t, output.WarningScheduled)
}

func TestParkingService_SaveLocation_ValidationErrors(t *testing.T) {
	fx := createTestParkingService(t)

	ctx := context.Background()
	userID := uuid.New()

	input := saveLocationInput(false, 0)
	input.Description = "  "
	_, err := fx.service.SaveLocation(ctx, userID, input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.SaveLocation(ctx, userID, saveLocationInput(true, 0))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestParkingService_GetUserLocations(t *testing.T) {
	fx := createTestParkingService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.ParkingLocation{
		{ID: uuid.New(), UserID: userID, Description: "Lot A"},
		{ID: uuid.New(), UserID: userID, Description: "Lot B"},
	}

	fx.parkingRepo.EXPECT().
		FindLocationsByUser(ctx, userID).
		Return(expected, nil)

	locations, err := fx.service.GetUserLocations(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, expected, locations)
}

func TestParkingService_DeleteLocation_CancelsWarningFirst(t *testing.T) {
	fx := createTestParkingService(t)

	ctx := context.Background()
	userID := uuid.New()
	locationID := uuid.New()
	location := &entity.ParkingLocation{ID: locationID, UserID: userID}

	fx.parkingRepo.EXPECT().
		FindLocationByID(ctx, locationID).
		Return(location, nil)

	fx.scheduler.EXPECT().
		Cancel(ctx, locationID).
		Return(nil)

	fx.parkingRepo.EXPECT().
		DeleteLocation(ctx, locationID).
		Return(nil)

	require.NoError(t, fx.service.DeleteLocation(ctx, userID, locationID))
}

func TestParkingService_DeleteLocation_CancelFailureBlocksDelete(t *testing.T) {
	fx := createTestParkingService(t)

	ctx := context.Background()
	userID := uuid.New()
	locationID := uuid.New()
	location := &entity.ParkingLocation{ID: locationID, UserID: userID}

	fx.parkingRepo.EXPECT().
		FindLocationByID(ctx, locationID).
		Return(location, nil)

	fx.scheduler.EXPECT().
		Cancel(ctx, locationID).
		Return(errors.New("database error"))

	err := fx.service.DeleteLocation(ctx, userID, locationID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to cancel expiry warning")
}

func TestParkingService_DeleteLocation_NotFound(t *testing.T) {
	fx := createTestParkingService(t)

	ctx := context.Background()
	locationID := uuid.New()

	fx.parkingRepo.EXPECT().
		FindLocationByID(ctx, locationID).
		Return(nil, repository.ErrParkingLocationNotFound)

	err := fx.service.DeleteLocation(ctx, uuid.New(), locationID)
	assert.ErrorIs(t, err, domainerrors.ErrParkingLocationNotFound)
}

func TestParkingService_DeleteLocation_WrongOwner(t *testing.T) {
	fx := createTestParkingService(t)

	ctx := context.Background()
	locationID := uuid.New()
	location := &entity.ParkingLocation{ID: locationID, UserID: uuid.New()}

	fx.parkingRepo.EXPECT().
		FindLocationByID(ctx, locationID).
		Return(location, nil)

	err := fx.service.DeleteLocation(ctx, uuid.New(), locationID)
	assert.ErrorIs(t, err, domainerrors.ErrParkingOwnershipViolation)
}

func TestParkingService_ShareLocationQR(t *testing.T) {
	fx := createTestParkingService(t)

	ctx := context.Background()
	userID := uuid.New()
	locationID := uuid.New()
	location := &entity.ParkingLocation{
		ID:        locationID,
		UserID:    userID,
		Latitude:  25.0330,
		Longitude: 121.5654,
	}
	expected := []byte{0x89, 0x50, 0x4e, 0x47}

	fx.parkingRepo.EXPECT().
		FindLocationByID(ctx, locationID).
		Return(location, nil)

	fx.qrcodeSvc.EXPECT().
		GenerateLocationQR(locationID, 25.0330, 121.5654).
		Return(expected, nil)

	png, err := fx.service.ShareLocationQR(ctx, userID, locationID)
	require.NoError(t, err)
	assert.Equal(t, expected, png)
}

func TestParkingService_ShareLocationQR_WrongOwner(t *testing.T) {
	fx := createTestParkingService(t)

	ctx := context.Background()
	locationID := uuid.New()
	location := &entity.ParkingLocation{ID: locationID, UserID: uuid.New()}

	fx.parkingRepo.EXPECT().
		FindLocationByID(ctx, locationID).
		Return(location, nil)

	_, err := fx.service.ShareLocationQR(ctx, uuid.New(), locationID)
	assert.ErrorIs(t, err, domainerrors.ErrParkingOwnershipViolation)
}
