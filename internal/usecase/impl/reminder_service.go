package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"parkpin/internal/domain/entity"
	domainerrors "parkpin/internal/domain/errors"
	"parkpin/internal/domain/lifecycle"
	"parkpin/internal/domain/repository"
	"parkpin/internal/domain/service"
	"parkpin/internal/usecase"

	"github.com/google/uuid"
)

const (
	// warningLeadMinutes is how long before the paid period runs out the
	// warning must reach the user. Durations at or below this lead time
	// would fire immediately or in the past, so they are skipped.
	warningLeadMinutes = 5

	reminderTitle = "Parking Expiry Warning"
)

var (
	// ErrInvalidReminderInput is returned when schedule input is malformed
	ErrInvalidReminderInput = errors.New("invalid reminder input")
)

// armedTimer pairs a live timer handle with the sequence number it was armed
// under. A fire callback whose sequence no longer matches the map entry has
// been superseded and must not deliver.
type armedTimer struct {
	seq   uint64
	timer Timer
}

type reminderService struct {
	logger          *slog.Logger
	reminderRepo    repository.ReminderRepository
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	publisher       service.EventPublisher
	clock           Clock

	mu     sync.Mutex
	seq    uint64
	timers map[uuid.UUID]*armedTimer
}

// NewReminderScheduler creates a new reminder scheduler instance
func NewReminderScheduler(
	logger *slog.Logger,
	reminderRepo repository.ReminderRepository,
	deviceRepo repository.DeviceRepository,
	notificationSvc service.NotificationService,
	publisher service.EventPublisher,
	clock Clock,
) usecase.ReminderScheduler {
	return &reminderService{
		logger:          logger,
		reminderRepo:    reminderRepo,
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
		publisher:       publisher,
		clock:           clock,
		timers:          make(map[uuid.UUID]*armedTimer),
	}
}

// Schedule arms an expiry warning for a parking location. The warning fires
// warningLeadMinutes before the paid duration runs out. Any previously armed
// warning for the same location is cancelled first, so at most one warning is
// live per location. The reminder is persisted before the timer is armed: the
// durable store is the source of truth and timers are rebuilt from it on
// restart.
func (s *reminderService) Schedule(ctx context.Context, input *usecase.ScheduleReminderInput) (usecase.ScheduleResult, error) {
	if err := validateScheduleInput(input); err != nil {
		return "", err
	}

	if input.TotalFreeMinutes <= warningLeadMinutes {
		s.logger.Debug("parking duration too short for a warning, skipping",
			slog.String("location_id", input.LocationID.String()),
			slog.Int("total_free_minutes", input.TotalFreeMinutes),
		)
		return usecase.ScheduleSkipped, nil
	}

	// A user without any active registered device cannot receive the warning.
	// Fail before touching the store or the timers so nothing is left behind.
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, input.UserID)
	if err != nil {
		return "", fmt.Errorf("failed to check active devices: %w", err)
	}
	if len(devices) == 0 {
		return "", domainerrors.ErrNotificationPermissionDenied
	}

	s.disarm(input.LocationID)

	now := s.clock.Now()
	reminder := &entity.ParkingReminder{
		LocationID:  input.LocationID,
		UserID:      input.UserID,
		Description: strings.TrimSpace(input.Description),
		FireAt:      now.Add(time.Duration(input.TotalFreeMinutes-warningLeadMinutes) * time.Minute),
		CreatedAt:   now,
	}

	if err := s.reminderRepo.Save(ctx, reminder); err != nil {
		// The timer was never armed, so a failed save leaves no orphan.
		return "", fmt.Errorf("failed to persist reminder: %w", err)
	}

	s.arm(reminder)

	s.logger.Info("expiry warning scheduled",
		slog.String("location_id", reminder.LocationID.String()),
		slog.Time("fire_at", reminder.FireAt),
	)

	return usecase.ScheduleArmed, nil
}

// Cancel disarms the live timer and removes the durable record for a
// location. Both halves are idempotent; cancelling an unknown location is a
// successful no-op. A timer whose callback is already running may still
// observe the disarm through its sequence check and abort delivery.
func (s *reminderService) Cancel(ctx context.Context, locationID uuid.UUID) error {
	s.disarm(locationID)

	if err := s.reminderRepo.DeleteByLocation(ctx, locationID); err != nil {
		return fmt.Errorf("failed to remove reminder: %w", err)
	}

	return nil
}

// RecoverOnStartup rebuilds timers from the durable store after a restart.
// Past-due reminders are delivered immediately, late rather than dropped;
// future ones are rearmed for their remaining interval. A failure on one
// reminder is logged and skipped so it cannot block the rest.
func (s *reminderService) RecoverOnStartup(ctx context.Context) error {
	reminders, err := s.reminderRepo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load pending reminders: %w", err)
	}

	now := s.clock.Now()
	recovered, rearmed := 0, 0

	for _, reminder := range reminders {
		if reminder.Due(now) {
			if err := s.deliver(ctx, reminder, service.ReminderEventRecovered); err != nil {
				s.logger.Error("failed to deliver past-due reminder",
					slog.String("location_id", reminder.LocationID.String()),
					slog.Any("error", err),
				)
				continue
			}
			recovered++
			continue
		}

		s.arm(reminder)
		rearmed++
	}

	s.logger.Info("reminder recovery finished",
		slog.Int("total", len(reminders)),
		slog.Int("recovered", recovered),
		slog.Int("rearmed", rearmed),
	)

	return nil
}

func validateScheduleInput(input *usecase.ScheduleReminderInput) error {
	if input == nil {
		return fmt.Errorf("%w: input is nil", ErrInvalidReminderInput)
	}
	if input.LocationID == uuid.Nil {
		return fmt.Errorf("%w: location id is required", ErrInvalidReminderInput)
	}
	if input.UserID == uuid.Nil {
		return fmt.Errorf("%w: user id is required", ErrInvalidReminderInput)
	}
	if strings.TrimSpace(input.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidReminderInput)
	}
	if input.TotalFreeMinutes <= 0 {
		return fmt.Errorf("%w: total free minutes must be positive", ErrInvalidReminderInput)
	}
	return nil
}

// arm starts a timer for the reminder under a fresh sequence number. Each arm
// supersedes any earlier timer for the same location.
func (s *reminderService) arm(reminder *entity.ParkingReminder) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	seq := s.seq

	delay := reminder.FireAt.Sub(s.clock.Now())
	if delay < 0 {
		delay = 0
	}

	s.timers[reminder.LocationID] = &armedTimer{
		seq: seq,
		timer: s.clock.AfterFunc(delay, func() {
			s.onFire(reminder, seq)
		}),
	}
}

// disarm stops and forgets the live timer for a location, if any.
func (s *reminderService) disarm(locationID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if armed, ok := s.timers[locationID]; ok {
		armed.timer.Stop()
		delete(s.timers, locationID)
	}
}

// onFire runs on the timer goroutine when a warning comes due. The sequence
// check guards against a stale callback: if the location was cancelled or
// rescheduled after this timer was armed, the map entry no longer carries this
// sequence and the callback must do nothing.
func (s *reminderService) onFire(reminder *entity.ParkingReminder, seq uint64) {
	s.mu.Lock()
	armed, ok := s.timers[reminder.LocationID]
	if !ok || armed.seq != seq {
		s.mu.Unlock()
		return
	}
	delete(s.timers, reminder.LocationID)
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := s.deliver(ctx, reminder, service.ReminderEventFired); err != nil {
		// The durable record is kept so the next recovery pass retries.
		s.logger.Error("failed to deliver expiry warning",
			slog.String("location_id", reminder.LocationID.String()),
			slog.Any("error", err),
		)
	}
}

// deliver pushes the warning to every active device of the reminder's owner.
// On success the durable record is removed; on failure it is left in place so
// the delivery is retried by the next recovery pass.
func (s *reminderService) deliver(ctx context.Context, reminder *entity.ParkingReminder, status string) error {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, reminder.UserID)
	if err != nil {
		return fmt.Errorf("failed to fetch devices: %w", err)
	}
	if len(devices) == 0 {
		return fmt.Errorf("no active devices for user %s", reminder.UserID)
	}

	tokens := make([]string, 0, len(devices))
	deviceMap := make(map[string]*entity.UserDevice) // token -> device mapping
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
		deviceMap[device.FCMToken] = device
	}

	body := fmt.Sprintf("Your parking at %s expires in %d minutes!", reminder.Description, warningLeadMinutes)
	data := map[string]string{
		"location_id": reminder.LocationID.String(),
		"fire_at":     fmt.Sprintf("%d", reminder.FireAtMillis()),
	}

	successCount, failureCount, invalidTokens, err := s.notificationSvc.SendBatchNotification(ctx, tokens, reminderTitle, body, data)
	if err != nil {
		return fmt.Errorf("failed to send expiry warning: %w", err)
	}

	// Handle invalid tokens - soft delete devices
	for _, token := range invalidTokens {
		if device, ok := deviceMap[token]; ok {
			if err := s.deviceRepo.DeleteDevice(ctx, device.ID); err != nil {
				s.logger.Warn("failed to delete invalid device",
					slog.String("device_id", device.ID.String()),
					slog.Any("error", err),
				)
			}
		}
	}

	if successCount == 0 {
		return fmt.Errorf("expiry warning reached no device (%d failures)", failureCount)
	}

	if err := s.reminderRepo.DeleteByLocation(ctx, reminder.LocationID); err != nil {
		// Delivery succeeded; a leftover record means at worst one duplicate
		// warning on the next recovery pass.
		s.logger.Warn("failed to remove delivered reminder",
			slog.String("location_id", reminder.LocationID.String()),
			slog.Any("error", err),
		)
	}

	event := &service.ReminderEvent{
		LocationID:  reminder.LocationID.String(),
		UserID:      reminder.UserID.String(),
		Description: reminder.Description,
		FiredAt:     s.clock.Now().UnixMilli(),
		Status:      status,
		TotalSent:   successCount,
		TotalFailed: failureCount,
	}
	if err := s.publisher.PublishReminderEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish reminder event",
			slog.String("location_id", reminder.LocationID.String()),
			slog.Any("error", err),
		)
	}

	return nil
}
