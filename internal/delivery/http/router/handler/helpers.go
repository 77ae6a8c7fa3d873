// Package handler contains the HTTP handlers for the application.
package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrMissingUserID is returned when an authenticated route runs without a
// user ID on the context, which means the auth middleware did not run.
var ErrMissingUserID = errors.New("user ID missing from request context")

// userIDFromContext reads the authenticated user's ID set by the auth middleware.
func userIDFromContext(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return uuid.Nil, ErrMissingUserID
	}

	return userID, nil
}
