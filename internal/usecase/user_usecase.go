// Package usecase defines the application-layer interfaces the delivery
// layer depends on, together with their input types.
package usecase

import (
	"context"

	"tasbal/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateSettingsInput carries the fields of a settings update. All fields
// are required; the update overwrites the stored row.
type UpdateSettingsInput struct {
	CountryCode   string
	RenderQuality int16
	AutoLowPower  bool
}

// UserUsecase defines the use cases around accounts and their settings.
type UserUsecase interface {
	// CreateGuestUser registers a guest account. An empty handle asks the
	// storage layer to generate a unique one; a supplied handle is persisted
	// verbatim and a duplicate yields a conflict error.
	CreateGuestUser(ctx context.Context, handle string) (*entity.User, error)

	// GetUserByID returns the account, or a not-found error.
	GetUserByID(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// GetUserSettings returns the account's settings, or a not-found error.
	GetUserSettings(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error)

	// UpdateUserSettings overwrites the account's settings.
	UpdateUserSettings(ctx context.Context, userID uuid.UUID, input UpdateSettingsInput) (*entity.UserSettings, error)
}
