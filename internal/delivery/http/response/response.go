// Package response provides unified helpers for building API responses.
package response

import (
	"net/http"

	deliverycontext "parkpin/internal/delivery/context"
	domainerrors "parkpin/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func meta(c echo.Context) *domainerrors.MetaInfo {
	return &domainerrors.MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success writes a successful response with the request ID attached.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, domainerrors.SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Error writes an error response.
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError binding error response
func BindingError(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// Forbidden 403 error
func Forbidden(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

// NotFound 404 error
func NotFound(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError writes a response for a known AppError; anything else is
// passed through to the central error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
