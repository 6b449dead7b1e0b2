package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "tasbal/internal/delivery/context"
	"tasbal/internal/delivery/http/validator"
	"tasbal/internal/domain/division"
	"tasbal/internal/domain/entity"
	domainerrors "tasbal/internal/domain/errors"
	"tasbal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserUsecase struct {
	createGuestUser    func(ctx context.Context, handle string) (*entity.User, error)
	getUserByID        func(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	getUserSettings    func(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error)
	updateUserSettings func(ctx context.Context, userID uuid.UUID, input usecase.UpdateSettingsInput) (*entity.UserSettings, error)
}

func (s *stubUserUsecase) CreateGuestUser(ctx context.Context, handle string) (*entity.User, error) {
	return s.createGuestUser(ctx, handle)
}

func (s *stubUserUsecase) GetUserByID(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return s.getUserByID(ctx, userID)
}

func (s *stubUserUsecase) GetUserSettings(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	return s.getUserSettings(ctx, userID)
}

func (s *stubUserUsecase) UpdateUserSettings(ctx context.Context, userID uuid.UUID, input usecase.UpdateSettingsInput) (*entity.UserSettings, error) {
	return s.updateUserSettings(ctx, userID, input)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestContext builds an echo context with the request validator installed,
// the way the real server configures it.
func newTestContext(method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUserHandler_CreateGuest(t *testing.T) {
	userID := uuid.New()
	handler := &UserHandler{
		userUC: &stubUserUsecase{
			createGuestUser: func(_ context.Context, handle string) (*entity.User, error) {
				assert.Equal(t, "yama", handle)

				return &entity.User{
					ID:        userID,
					Handle:    "yama",
					Plan:      division.UserPlanFree,
					IsGuest:   true,
					AuthState: division.AuthStateGuest,
					CreatedAt: time.Now(),
				}, nil
			},
		},
		logger: discardLogger(),
	}

	c, rec := newTestContext(http.MethodPost, "/api/v1/users/guest", `{"handle":"yama"}`)

	err := handler.CreateGuest(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, userID, resp.ID)
	assert.Equal(t, "yama", resp.Handle)
	assert.Equal(t, "FREE", resp.Plan)
	assert.True(t, resp.IsGuest)
}

func TestUserHandler_CreateGuest_EmptyBody(t *testing.T) {
	handler := &UserHandler{
		userUC: &stubUserUsecase{
			createGuestUser: func(_ context.Context, handle string) (*entity.User, error) {
				assert.Empty(t, handle)

				return &entity.User{ID: uuid.New(), Handle: "guest_1", Plan: division.UserPlanFree, IsGuest: true, AuthState: division.AuthStateGuest}, nil
			},
		},
		logger: discardLogger(),
	}

	c, rec := newTestContext(http.MethodPost, "/api/v1/users/guest", "")

	err := handler.CreateGuest(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUserHandler_GetMe_WithoutIdentity(t *testing.T) {
	handler := &UserHandler{userUC: &stubUserUsecase{}, logger: discardLogger()}

	c, _ := newTestContext(http.MethodGet, "/api/v1/me", "")

	err := handler.GetMe(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMissingIdentity)
}

func TestUserHandler_UpdateSettings(t *testing.T) {
	userID := uuid.New()
	handler := &UserHandler{
		userUC: &stubUserUsecase{
			updateUserSettings: func(_ context.Context, gotUserID uuid.UUID, input usecase.UpdateSettingsInput) (*entity.UserSettings, error) {
				assert.Equal(t, userID, gotUserID)
				assert.Equal(t, "JP", input.CountryCode)
				assert.Equal(t, division.RenderQualityLow.Value(), input.RenderQuality)
				assert.True(t, input.AutoLowPower)

				return &entity.UserSettings{
					UserID:        userID,
					CountryCode:   "JP",
					RenderQuality: division.RenderQualityLow,
					AutoLowPower:  true,
					UpdatedAt:     time.Now(),
				}, nil
			},
		},
		logger: discardLogger(),
	}

	c, rec := newTestContext(http.MethodPut, "/api/v1/users/me/settings",
		`{"countryCode":"JP","renderQuality":3,"autoLowPower":true}`)
	deliverycontext.SetUserID(c, userID)

	err := handler.UpdateSettings(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp SettingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "JP", resp.CountryCode)
	assert.True(t, resp.AutoLowPower)
}

func TestUserHandler_UpdateSettings_InvalidCountryCode(t *testing.T) {
	handler := &UserHandler{userUC: &stubUserUsecase{}, logger: discardLogger()}

	c, _ := newTestContext(http.MethodPut, "/api/v1/users/me/settings",
		`{"countryCode":"JPN","renderQuality":1}`)
	deliverycontext.SetUserID(c, uuid.New())

	err := handler.UpdateSettings(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}
