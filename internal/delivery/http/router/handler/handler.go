// Package handler contains the HTTP handlers and their wire DTOs.
package handler

import (
	"strconv"

	deliverycontext "tasbal/internal/delivery/context"
	domainerrors "tasbal/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// currentUserID returns the caller resolved by the identity middleware.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrMissingIdentity
	}

	return userID, nil
}

// queryInt parses an optional integer query parameter, falling back to def
// when absent or unparseable. Range clamping happens in the service layer.
func queryInt(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}

	return value
}
