package handler

import (
	"log/slog"
	"net/http"

	"parkpin/internal/delivery/http/response"
	"parkpin/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DeviceHandler holds dependencies for device-related handlers.
type DeviceHandler struct {
	uc     usecase.DeviceUsecase
	logger *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler, injected by Fx.
func NewDeviceHandler(uc usecase.DeviceUsecase, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterDeviceRequest represents the request body for device registration.
type RegisterDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required,max=255"`
	Platform string `json:"platform" validate:"required,oneof=ios android"`
}

// RegisterDevice handles the request to register a device for push delivery.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	device, err := h.uc.RegisterDevice(c.Request().Context(), userID, &usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// GetUserDevices handles the request to list the user's active devices.
func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	devices, err := h.uc.GetUserDevices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// DeactivateDevice handles the request to deactivate a registered device.
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_DEVICE_ID", "Device ID must be a valid UUID")
	}

	if err := h.uc.DeactivateDevice(c.Request().Context(), userID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Device deactivated"})
}
