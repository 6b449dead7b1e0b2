package middleware

import (
	deliverycontext "tasbal/internal/delivery/context"
	domainerrors "tasbal/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// IdentityMiddleware resolves the caller from the X-User-Id header. Token
// authentication is out of scope for this surface; the header is trusted as
// delivered by the edge.
type IdentityMiddleware struct{}

// NewIdentityMiddleware creates a new identity middleware
func NewIdentityMiddleware() *IdentityMiddleware {
	return &IdentityMiddleware{}
}

// Require rejects requests without a parseable X-User-Id header and stores
// the resolved ID in both echo.Context and the request context.
func (m *IdentityMiddleware) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(deliverycontext.HeaderXUserID)
		if raw == "" {
			return domainerrors.ErrMissingIdentity
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.ErrMissingIdentity.WithDetails("X-User-Id must be a UUID")
		}

		deliverycontext.SetUserID(c, userID)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithUserID(c.Request().Context(), userID)))

		return next(c)
	}
}
