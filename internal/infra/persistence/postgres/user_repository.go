// Package postgres contains the concrete implementation of the persistence
// layer. All data access goes through database-owned routines invoked with
// GORM's Raw API; the schema itself is never touched directly.
package postgres

import (
	"context"

	"tasbal/internal/domain/division"
	"tasbal/internal/domain/entity"
	domainerrors "tasbal/internal/domain/errors"
	"tasbal/internal/domain/repository"
	"tasbal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain's UserRepository against the user
// routines.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface,
// adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// CreateGuest registers a guest account. A NULL handle tells the routine to
// generate one.
func (repo *userRepository) CreateGuest(ctx context.Context, handle string) (*entity.User, error) {
	var row model.UserRow
	result := repo.db.WithContext(ctx).
		Raw(routineCall(spCreateGuestUser, 1), nullIfEmpty(handle)).
		Scan(&row)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, domainerrors.ErrHandleTaken
		}
		if isNotNullConstraintViolation(result.Error) {
			return nil, domainerrors.ErrUserCreationFailed
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create guest user")
	}
	if result.RowsAffected == 0 {
		// The routine always yields the created row; an empty result means
		// the call itself misfired.
		return nil, domainerrors.ErrUserCreationFailed
	}

	return toUserEntity(&row), nil
}

// FindByID retrieves a single user by ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var row model.UserRow
	result := repo.db.WithContext(ctx).
		Raw(routineCall(spGetUserByID, 1), id).
		Scan(&row)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to find user by id")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrUserNotFound
	}

	return toUserEntity(&row), nil
}

// FindSettings retrieves the user's settings row.
func (repo *userRepository) FindSettings(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	var row model.UserSettingsRow
	result := repo.db.WithContext(ctx).
		Raw(routineCall(spGetUserSettings, 1), userID).
		Scan(&row)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to find user settings")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrSettingsNotFound
	}

	return toUserSettingsEntity(&row), nil
}

// UpdateSettings overwrites the user's settings and returns the stored state.
func (repo *userRepository) UpdateSettings(ctx context.Context, userID uuid.UUID, countryCode string, quality division.RenderQuality, autoLowPower bool) (*entity.UserSettings, error) {
	var row model.UserSettingsRow
	result := repo.db.WithContext(ctx).
		Raw(routineCall(spUpdateUserSettings, 4), userID, nullIfEmpty(countryCode), quality.Value(), autoLowPower).
		Scan(&row)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user settings")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrSettingsNotFound
	}

	return toUserSettingsEntity(&row), nil
}

// toUserEntity maps a routine result row back to a pure domain entity.
func toUserEntity(row *model.UserRow) *entity.User {
	plan, ok := division.UserPlanFromValue(row.Plan)
	if !ok {
		plan = division.DefaultUserPlan()
	}
	authState, ok := division.AuthStateFromValue(row.AuthState)
	if !ok {
		authState = division.AuthStateGuest
	}

	return &entity.User{
		ID:          row.ID,
		Handle:      row.Handle,
		Plan:        plan,
		IsGuest:     row.IsGuest,
		AuthState:   authState,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		LastLoginAt: row.LastLoginAt,
		DeletedAt:   row.DeletedAt,
	}
}

func toUserSettingsEntity(row *model.UserSettingsRow) *entity.UserSettings {
	quality, ok := division.RenderQualityFromValue(row.RenderQuality)
	if !ok {
		quality = division.DefaultRenderQuality()
	}

	return &entity.UserSettings{
		UserID:        row.UserID,
		CountryCode:   row.CountryCode,
		RenderQuality: quality,
		AutoLowPower:  row.AutoLowPower,
		UpdatedAt:     row.UpdatedAt,
	}
}
