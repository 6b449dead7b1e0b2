// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"tasbal/internal/domain/division"
	"tasbal/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrSettingsNotFound is returned when a user's settings row is absent.
var ErrSettingsNotFound = errors.New("user settings not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// CreateGuest registers a new guest account. When handle is empty the
	// storage routine generates a unique one. The routine always produces a
	// row on success, so an empty result is an infrastructure fault.
	CreateGuest(ctx context.Context, handle string) (*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	// Returns ErrUserNotFound when no row exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindSettings retrieves the settings row for the user.
	// Returns ErrSettingsNotFound when no row exists.
	FindSettings(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error)

	// UpdateSettings overwrites the user's settings and returns the stored row.
	UpdateSettings(ctx context.Context, userID uuid.UUID, countryCode string, quality division.RenderQuality, autoLowPower bool) (*entity.UserSettings, error)
}
