package handler

import (
	"log/slog"
	"net/http"

	"parkpin/internal/delivery/http/response"
	"parkpin/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ParkingHandler holds dependencies for parking-location handlers.
type ParkingHandler struct {
	uc     usecase.ParkingUsecase
	logger *slog.Logger
}

// NewParkingHandler is the constructor for ParkingHandler, injected by Fx.
func NewParkingHandler(uc usecase.ParkingUsecase, logger *slog.Logger) *ParkingHandler {
	return &ParkingHandler{
		uc:     uc,
		logger: logger,
	}
}

// SaveLocationRequest represents the request body for saving a parking location.
type SaveLocationRequest struct {
	Description string  `json:"description" validate:"required,max=255"`
	Latitude    float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude   float64 `json:"longitude" validate:"min=-180,max=180"`
	IsPaid      bool    `json:"is_paid"`
	FreeMinutes int     `json:"free_minutes" validate:"min=0"`
}

// SaveLocation handles the request to save a dropped pin.
func (h *ParkingHandler) SaveLocation(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SaveLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid parking location input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.uc.SaveLocation(c.Request().Context(), userID, &usecase.SaveLocationInput{
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		IsPaid:      req.IsPaid,
		FreeMinutes: req.FreeMinutes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// GetUserLocations handles the request to list the user's saved locations.
func (h *ParkingHandler) GetUserLocations(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	locations, err := h.uc.GetUserLocations(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, locations)
}

// DeleteLocation handles the request to delete a saved location.
func (h *ParkingHandler) DeleteLocation(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_LOCATION_ID", "Location ID must be a valid UUID")
	}

	if err := h.uc.DeleteLocation(c.Request().Context(), userID, locationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Location deleted"})
}

// ShareLocationQR handles the request to render a saved location as a QR code.
func (h *ParkingHandler) ShareLocationQR(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_LOCATION_ID", "Location ID must be a valid UUID")
	}

	png, err := h.uc.ShareLocationQR(c.Request().Context(), userID, locationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
