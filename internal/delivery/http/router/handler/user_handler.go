package handler

import (
	"log/slog"
	"net/http"
	"time"

	"tasbal/internal/delivery/http/response"
	"tasbal/internal/domain/entity"
	"tasbal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for account-related handlers
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// CreateGuestRequest represents the request body for guest registration.
// The handle is optional; when omitted the storage layer generates one.
type CreateGuestRequest struct {
	Handle string `json:"handle" validate:"omitempty,min=1,max=30"`
}

// UpdateSettingsRequest represents the request body for a settings update.
type UpdateSettingsRequest struct {
	CountryCode   string `json:"countryCode" validate:"omitempty,len=2"`
	RenderQuality int16  `json:"renderQuality" validate:"required"`
	AutoLowPower  bool   `json:"autoLowPower"`
}

// UserResponse is the wire shape of an account.
type UserResponse struct {
	ID            uuid.UUID  `json:"id"`
	Handle        string     `json:"handle"`
	Plan          string     `json:"plan"`
	IsGuest       bool       `json:"isGuest"`
	AuthState     int16      `json:"authState"`
	AuthStateName string     `json:"authStateName"`
	CreatedAt     time.Time  `json:"createdAt"`
	LastLoginAt   *time.Time `json:"lastLoginAt,omitempty"`
}

// SettingsResponse is the wire shape of account settings.
type SettingsResponse struct {
	CountryCode   string    `json:"countryCode"`
	RenderQuality int16     `json:"renderQuality"`
	AutoLowPower  bool      `json:"autoLowPower"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CreateGuest handles guest registration
func (h *UserHandler) CreateGuest(c echo.Context) error {
	var req CreateGuestRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "リクエストボディを解析できません")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userUC.CreateGuestUser(c.Request().Context(), req.Handle)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusCreated, toUserResponse(user))
}

// GetMe returns the calling account
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, toUserResponse(user))
}

// GetSettings returns the calling account's settings
func (h *UserHandler) GetSettings(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	settings, err := h.userUC.GetUserSettings(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, toSettingsResponse(settings))
}

// UpdateSettings overwrites the calling account's settings
func (h *UserHandler) UpdateSettings(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "リクエストボディを解析できません")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	settings, err := h.userUC.UpdateUserSettings(c.Request().Context(), userID, usecase.UpdateSettingsInput{
		CountryCode:   req.CountryCode,
		RenderQuality: req.RenderQuality,
		AutoLowPower:  req.AutoLowPower,
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, toSettingsResponse(settings))
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:            user.ID,
		Handle:        user.Handle,
		Plan:          user.Plan.DisplayName(),
		IsGuest:       user.IsGuest,
		AuthState:     user.AuthState.Value(),
		AuthStateName: user.AuthState.DisplayName(),
		CreatedAt:     user.CreatedAt,
		LastLoginAt:   user.LastLoginAt,
	}
}

func toSettingsResponse(settings *entity.UserSettings) *SettingsResponse {
	return &SettingsResponse{
		CountryCode:   settings.CountryCode,
		RenderQuality: settings.RenderQuality.Value(),
		AutoLowPower:  settings.AutoLowPower,
		UpdatedAt:     settings.UpdatedAt,
	}
}
