// Package impl contains the concrete application services behind the
// usecase interfaces.
package impl

import (
	"context"

	"tasbal/internal/domain/division"
	"tasbal/internal/domain/entity"
	domainerrors "tasbal/internal/domain/errors"
	"tasbal/internal/domain/repository"
	"tasbal/internal/errors"
	"tasbal/internal/usecase"

	"github.com/google/uuid"
)

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repository.UserRepository) usecase.UserUsecase {
	return &userService{userRepo: userRepo}
}

// CreateGuestUser registers a guest account, delegating handle generation to
// the storage routine when none is supplied.
func (s *userService) CreateGuestUser(ctx context.Context, handle string) (*entity.User, error) {
	user, err := s.userRepo.CreateGuest(ctx, handle)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByID returns the account, mapping absence to a 404-class error.
func (s *userService) GetUserByID(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// GetUserSettings returns the account's settings, mapping absence to a
// 404-class error.
func (s *userService) GetUserSettings(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	settings, err := s.userRepo.FindSettings(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			return nil, domainerrors.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to find user settings")
	}

	return settings, nil
}

// UpdateUserSettings overwrites the account's settings after validating the
// render-quality code against its division table.
func (s *userService) UpdateUserSettings(ctx context.Context, userID uuid.UUID, input usecase.UpdateSettingsInput) (*entity.UserSettings, error) {
	quality, ok := division.RenderQualityFromValue(input.RenderQuality)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown renderQuality code")
	}

	settings, err := s.userRepo.UpdateSettings(ctx, userID, input.CountryCode, quality, input.AutoLowPower)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			return nil, domainerrors.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to update user settings")
	}

	return settings, nil
}
