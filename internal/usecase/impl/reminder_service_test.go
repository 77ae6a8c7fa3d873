package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"parkpin/internal/domain/entity"
	domainerrors "parkpin/internal/domain/errors"
	"parkpin/internal/domain/service"
	mockRepo "parkpin/internal/mocks/repository"
	mockService "parkpin/internal/mocks/service"
	"parkpin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeTimer is a manually fired Timer for deterministic scheduler tests.
type fakeTimer struct {
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true

	return true
}

// fakeClock freezes time and records armed timers so tests can fire them
// synchronously.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
	delays []time.Duration
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, fn func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &fakeTimer{fn: fn}
	c.timers = append(c.timers, t)
	c.delays = append(c.delays, d)

	return t
}

func (c *fakeClock) armedCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.timers)
}

func (c *fakeClock) lastTimer() *fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.timers[len(c.timers)-1]
}

func (c *fakeClock) lastDelay() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.delays[len(c.delays)-1]
}

// reminderServiceFixtures holds all test dependencies for scheduler tests.
type reminderServiceFixtures struct {
	service         usecase.ReminderScheduler
	reminderRepo    *mockRepo.MockReminderRepository
	deviceRepo      *mockRepo.MockDeviceRepository
	notificationSvc *mockService.MockNotificationService
	publisher       *mockService.MockEventPublisher
	clock           *fakeClock
}

func createTestReminderService(t *testing.T, now time.Time) reminderServiceFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reminderRepo := mockRepo.NewMockReminderRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockService.NewMockNotificationService(t)
	publisher := mockService.NewMockEventPublisher(t)
	clock := newFakeClock(now)

	service := NewReminderScheduler(logger, reminderRepo, deviceRepo, notificationSvc, publisher, clock)

	return reminderServiceFixtures{
		service:         service,
		reminderRepo:    reminderRepo,
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
		publisher:       publisher,
		clock:           clock,
	}
}

func activeDevice(userID uuid.UUID, token string) *entity.UserDevice {
	return &entity.UserDevice{
		ID:       uuid.New(),
		UserID:   userID,
		FCMToken: token,
		DeviceID: "device-" + token,
		Platform: "ios",
		IsActive: true,
	}
}

func scheduleInput(locationID, userID uuid.UUID, totalMinutes int) *usecase.ScheduleReminderInput {
	return &usecase.ScheduleReminderInput{
		LocationID:       locationID,
		UserID:           userID,
		Description:      "Main St garage",
		TotalFreeMinutes: totalMinutes,
	}
}

func TestReminderService_Schedule_SkipsShortDuration(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fx := createTestReminderService(t, now)

	ctx := context.Background()
	for _, minutes := range []int{1, 4, 5} {
		result, err := fx.service.Schedule(ctx, scheduleInput(uuid.New(), uuid.New(), minutes))
		require.NoError(t, err)
		assert.Equal(t, usecase.ScheduleSkipped, result)
	}

	assert.Zero(t, fx.clock.armedCount())
}

func TestReminderService_Schedule_InvalidInput(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fx := createTestReminderService(t, now)

	ctx := context.Background()

	_, err := fx.service.Schedule(ctx, nil)
	assert.ErrorIs(t, err, ErrInvalidReminderInput)

	_, err = fx.service.Schedule(ctx, scheduleInput(uuid.Nil, uuid.New(), 30))
	assert.ErrorIs(t, err, ErrInvalidReminderInput)

	_, err = fx.service.Schedule(ctx, scheduleInput(uuid.New(), uuid.Nil, 30))
	assert.ErrorIs(t, err, ErrInvalidReminderInput)

	input := scheduleInput(uuid.New(), uuid.New(), 30)
	input.Description = "   "
	_, err = fx.service.Schedule(ctx, input)
	assert.ErrorIs(t, err, ErrInvalidReminderInput)

	_, err = fx.service.Schedule(ctx, scheduleInput(uuid.New(), uuid.New(), 0))
	assert.ErrorIs(t, err, ErrInvalidReminderInput)
}

func TestReminderService_Schedule_NoActiveDevices(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fx := createTestReminderService(t, now)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{}, nil)

	_, err := fx.service.Schedule(ctx, scheduleInput(uuid.New(), userID, 30))
	assert.ErrorIs(t, err, domainerrors.ErrNotificationPermissionDenied)
	assert.Zero(t, fx.clock.armedCount())
}

func TestReminderService_Schedule_PersistsThenArms(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fx := createTestReminderService(t, now)

	ctx := context.Background()
	locationID := uuid.New()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{activeDevice(userID, "token-1")}, nil)

	fx.reminderRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.ParkingReminder")).
		Run(func(_ context.Context, reminder *entity.ParkingReminder) {
			assert.Equal(t, locationID, reminder.LocationID)
			assert.Equal(t, userID, reminder.UserID)
			assert.Equal(t, now.Add(25*time.Minute), reminder.FireAt)
		}).
		Return(nil)

	result, err := fx.service.Schedule(ctx, scheduleInput(locationID, userID, 30))
	require.NoError(t, err)
	assert.Equal(t, usecase.ScheduleArmed, result)

	require.Equal(t, 1, fx.clock.armedCount())
	assert.Equal(t, 25*time.Minute, fx.clock.lastDelay())
}

func TestReminderService_Schedule_SaveFailureLeavesNoTimer(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fx := createTestReminderService(t, now)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{activeDevice(userID, "token-1")}, nil)

	fx.reminderRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.ParkingReminder")).
		Return(errors.New("connection reset"))

	_, err := fx.service.Schedule(ctx, scheduleInput(uuid.New(), userID, 30))
	assert.Error(t, err)
	assert.Zero(t, fx.clock.armedCount())
}

func TestReminderService_Fire_DeliversAndRemovesRecord(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fx := createTestReminderService(t, now)

	ctx := context.Background()
	locationID := uuid.New()
	userID := uuid.New()
	device := activeDevice(userID, "token-1")

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, userID).
		Return([]*entity.UserDevice{device}, nil)

	fx.reminderRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.ParkingReminder")).
		Return(nil)

	result, err := fx.service.Schedule(ctx, scheduleInput(locationID, userID, 30))
	require.NoError(t, err)
	require.Equal(t, usecase.ScheduleArmed, result)

	fx.notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"token-1"}, "Parking Expiry Warning", mock.AnythingOfType("string"), mock.Anything).
		Return(1, 0, nil, nil)

	fx.reminderRepo.EXPECT().
		DeleteByLocation(mock.Anything, locationID).
		Return(nil)

	fx.publisher.EXPECT().
		PublishReminderEvent(mock.Anything, mock.AnythingOfType("*service.ReminderEvent")).
		Run(func(_ context.Context, event *service.ReminderEvent) {
			assert.Equal(t, locationID.String(), event.LocationID)
			assert.Equal(t, userID.String(), event.UserID)
			assert.Equal(t, service.ReminderEventFired, event.Status)
			assert.Equal(t, 1, event.TotalSent)
			assert.Equal(t, 0, event.TotalFailed)
		}).
		Return(nil)

	fx.clock.lastTimer().fn()
}

func TestReminderService_Fire_DeliveryFailureRetainsRecord(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fx := createTestReminderService(t, now)

	ctx := context.Background()
	locationID := uuid.New()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, userID).
		Return([]*entity.UserDevice{activeDevice(userID, "token-1")}, nil)

	fx.reminderRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.ParkingReminder")).
		Return(nil)

	_, err := fx.service.Schedule(ctx, scheduleInput(locationID, userID, 30))
	require.NoError(t, err)

	fx.notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("fcm unavailable"))

	// No DeleteByLocation and no publish: the durable record must survive so
	// the next recovery pass can retry the delivery.
	fx.clock.lastTimer().fn()
}

func TestReminderService_Fire_InvalidTokensDeactivateDevices(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fx := createTestReminderService(t, now)

	ctx := context.Background()
	locationID := uuid.New()
	userID := uuid.New()
	good := activeDevice(userID, "token-good")
	stale := activeDevice(userID, "token-stale")

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, userID).
		Return([]*entity.UserDevice{good, stale}, nil)

	fx.reminderRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.ParkingReminder")).
		Return(nil)

	_, err := fx.service.Schedule(ctx, scheduleInput(locationID, userID, 30))
	require.NoError(t, err)

	fx.notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"token-good", "token-stale"}, mock.Anything, mock.Anything, mock.Anything).
		Return(1, 1, []string{"token-stale"}, nil)

	fx.deviceRepo.EXPECT().
		DeleteDevice(mock.Anything, stale.ID).
		Return(nil)

	fx.reminderRepo.EXPECT().
		DeleteByLocation(mock.Anything, locationID).
		Return(nil)

	fx.publisher.EXPECT().
		PublishReminderEvent(mock.Anything, mock.Anything).
		Return(nil)

	fx.clock.lastTimer().fn()
}

func TestReminderService_Reschedule_SupersedesOldTimer(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fx := createTestReminderService(t, now)

	ctx := context.Background()
	locationID := uuid.New()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{activeDevice(userID, "token-1")}, nil)

	fx.reminderRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.ParkingReminder")).
		Return(nil)

	_, err := fx.service.Schedule(ctx, scheduleInput(locationID, userID, 30))
	require.NoError(t, err)
	first := fx.clock.lastTimer()

	_, err = fx.service.Schedule(ctx, scheduleInput(locationID, userID, 60))
	require.NoError(t, err)

	assert.True(t, first.stopped)
	assert.Equal(t, 55*time.Minute, fx.clock.lastDelay())

	// Even if the superseded callback still runs, its stale sequence number
	// must keep it from delivering anything.
	first.fn()
}

func TestReminderService_Cancel_DisarmsAndDeletes(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fx := createTestReminderService(t, now)

	ctx := context.Background()
	locationID := uuid.New()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{activeDevice(userID, "token-1")}, nil)

	fx.reminderRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.ParkingReminder")).
		Return(nil)

	_, err := fx.service.Schedule(ctx, scheduleInput(locationID, userID, 30))
	require.NoError(t, err)
	armed := fx.clock.lastTimer()

	fx.reminderRepo.EXPECT().
		DeleteByLocation(ctx, locationID).
		Return(nil)

	require.NoError(t, fx.service.Cancel(ctx, locationID))
	assert.True(t, armed.stopped)

	// A cancelled callback must not deliver.
	armed.fn()
}

func TestReminderService_Cancel_UnknownLocationIsNoOp(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fx := createTestReminderService(t, now)

	ctx := context.Background()
	locationID := uuid.New()

	fx.reminderRepo.EXPECT().
		DeleteByLocation(ctx, locationID).
		Return(nil)

	require.NoError(t, fx.service.Cancel(ctx, locationID))
}

func TestReminderService_Recover_DeliversPastDue(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fx := createTestReminderService(t, now)

	ctx := context.Background()
	locationID := uuid.New()
	userID := uuid.New()
	reminder := &entity.ParkingReminder{
		LocationID:  locationID,
		UserID:      userID,
		Description: "Main St garage",
		FireAt:      now.Add(-10 * time.Minute),
		CreatedAt:   now.Add(-40 * time.Minute),
	}

	fx.reminderRepo.EXPECT().
		FindAll(ctx).
		Return([]*entity.ParkingReminder{reminder}, nil)

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{activeDevice(userID, "token-1")}, nil)

	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-1"}, mock.Anything, mock.Anything, mock.Anything).
		Return(1, 0, nil, nil)

	fx.reminderRepo.EXPECT().
		DeleteByLocation(ctx, locationID).
		Return(nil)

	fx.publisher.EXPECT().
		PublishReminderEvent(ctx, mock.AnythingOfType("*service.ReminderEvent")).
		Run(func(_ context.Context, event *service.ReminderEvent) {
			assert.Equal(t, service.ReminderEventRecovered, event.Status)
		}).
		Return(nil)

	require.NoError(t, fx.service.RecoverOnStartup(ctx))
	assert.Zero(t, fx.clock.armedCount())
}

func TestReminderService_Recover_RearmsFutureReminder(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fx := createTestReminderService(t, now)

	ctx := context.Background()
	reminder := &entity.ParkingReminder{
		LocationID:  uuid.New(),
		UserID:      uuid.New(),
		Description: "Main St garage",
		FireAt:      now.Add(18 * time.Minute),
		CreatedAt:   now.Add(-7 * time.Minute),
	}

	fx.reminderRepo.EXPECT().
		FindAll(ctx).
		Return([]*entity.ParkingReminder{reminder}, nil)

	require.NoError(t, fx.service.RecoverOnStartup(ctx))
	require.Equal(t, 1, fx.clock.armedCount())
	assert.Equal(t, 18*time.Minute, fx.clock.lastDelay())
}

func TestReminderService_Recover_FailedEntryDoesNotAbortOthers(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fx := createTestReminderService(t, now)

	ctx := context.Background()
	brokenUser := uuid.New()
	healthyUser := uuid.New()
	broken := &entity.ParkingReminder{
		LocationID:  uuid.New(),
		UserID:      brokenUser,
		Description: "Lot A",
		FireAt:      now.Add(-5 * time.Minute),
	}
	healthy := &entity.ParkingReminder{
		LocationID:  uuid.New(),
		UserID:      healthyUser,
		Description: "Lot B",
		FireAt:      now.Add(-1 * time.Minute),
	}

	fx.reminderRepo.EXPECT().
		FindAll(ctx).
		Return([]*entity.ParkingReminder{broken, healthy}, nil)

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, brokenUser).
		Return(nil, errors.New("database error"))

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, healthyUser).
		Return([]*entity.UserDevice{activeDevice(healthyUser, "token-b")}, nil)

	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-b"}, mock.Anything, mock.Anything, mock.Anything).
		Return(1, 0, nil, nil)

	fx.reminderRepo.EXPECT().
		DeleteByLocation(ctx, healthy.LocationID).
		Return(nil)

	fx.publisher.EXPECT().
		PublishReminderEvent(ctx, mock.Anything).
		Return(nil)

	require.NoError(t, fx.service.RecoverOnStartup(ctx))
}

func TestReminderService_Fire_NoSuccessfulDeliveryRetainsRecord(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fx := createTestReminderService(t, now)

	ctx := context.Background()
	locationID := uuid.New()
	userID := uuid.New()
	stale := activeDevice(userID, "token-stale")

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, userID).
		Return([]*entity.UserDevice{stale}, nil)

	fx.reminderRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.ParkingReminder")).
		Return(nil)

	_, err := fx.service.Schedule(ctx, scheduleInput(locationID, userID, 30))
	require.NoError(t, err)

	fx.notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 1, []string{"token-stale"}, nil)

	fx.deviceRepo.EXPECT().
		DeleteDevice(mock.Anything, stale.ID).
		Return(nil)

	// Zero successes: the record stays and no event is published.
	fx.clock.lastTimer().fn()
}
