package impl

import (
	"context"
	"testing"
	"time"

	"tasbal/internal/domain/division"
	"tasbal/internal/domain/entity"
	domainerrors "tasbal/internal/domain/errors"
	"tasbal/internal/domain/repository"
	mockRepo "tasbal/internal/mocks/repository"
	"tasbal/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_CreateGuestUser(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(mockUserRepo)

	ctx := context.Background()
	expected := &entity.User{
		ID:        uuid.New(),
		Handle:    "guest_4213",
		Plan:      division.UserPlanFree,
		IsGuest:   true,
		AuthState: division.AuthStateGuest,
		CreatedAt: time.Now(),
	}

	mockUserRepo.EXPECT().
		CreateGuest(ctx, "").
		Return(expected, nil)

	user, err := service.CreateGuestUser(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, expected, user)
	assert.True(t, user.IsGuest)
	assert.Equal(t, division.UserPlanFree, user.Plan)
}

func TestUserService_CreateGuestUser_HandleTaken(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(mockUserRepo)

	ctx := context.Background()

	mockUserRepo.EXPECT().
		CreateGuest(ctx, "taken").
		Return(nil, domainerrors.ErrHandleTaken)

	user, err := service.CreateGuestUser(ctx, "taken")
	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrHandleTaken)
}

func TestUserService_GetUserByID_NotFound(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(mockUserRepo)

	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	user, err := service.GetUserByID(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, user)

	// Absence maps to the 404-class application error, never a bare 500.
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
	assert.Equal(t, "USER_NOT_FOUND", appErr.ErrorCode())
}

func TestUserService_GetUserSettings_NotFound(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(mockUserRepo)

	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.EXPECT().
		FindSettings(ctx, userID).
		Return(nil, repository.ErrSettingsNotFound)

	settings, err := service.GetUserSettings(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, settings)
	assert.ErrorIs(t, err, domainerrors.ErrSettingsNotFound)
}

func TestUserService_UpdateUserSettings(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(mockUserRepo)

	ctx := context.Background()
	userID := uuid.New()
	expected := &entity.UserSettings{
		UserID:        userID,
		CountryCode:   "JP",
		RenderQuality: division.RenderQualityLow,
		AutoLowPower:  true,
	}

	mockUserRepo.EXPECT().
		UpdateSettings(ctx, userID, "JP", division.RenderQualityLow, true).
		Return(expected, nil)

	settings, err := service.UpdateUserSettings(ctx, userID, usecase.UpdateSettingsInput{
		CountryCode:   "JP",
		RenderQuality: division.RenderQualityLow.Value(),
		AutoLowPower:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, expected, settings)
}

func TestUserService_UpdateUserSettings_UnknownQuality(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(mockUserRepo)

	ctx := context.Background()

	settings, err := service.UpdateUserSettings(ctx, uuid.New(), usecase.UpdateSettingsInput{
		CountryCode:   "JP",
		RenderQuality: 99,
	})
	require.Error(t, err)
	assert.Nil(t, settings)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}
