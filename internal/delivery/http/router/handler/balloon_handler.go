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

// BalloonHandlerParams holds dependencies for BalloonHandler, injected by Fx.
type BalloonHandlerParams struct {
	fx.In

	BalloonUC usecase.BalloonUsecase
	Logger    *slog.Logger
}

// BalloonHandler holds dependencies for balloon-related handlers
type BalloonHandler struct {
	balloonUC usecase.BalloonUsecase
	logger    *slog.Logger
}

// NewBalloonHandler is the constructor for BalloonHandler
func NewBalloonHandler(params BalloonHandlerParams) *BalloonHandler {
	return &BalloonHandler{
		balloonUC: params.BalloonUC,
		logger:    params.Logger,
	}
}

// CreateBalloonRequest represents the request body for creating a balloon
type CreateBalloonRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description" validate:"max=1000"`
	ColorID     *int16 `json:"colorId" validate:"required"`
	TagIconID   *int16 `json:"tagIconId"`
	IsPublic    *bool  `json:"isPublic" validate:"required"`
}

// SetSelectionRequest represents the request body for selecting a balloon
type SetSelectionRequest struct {
	BalloonID uuid.UUID `json:"balloonId" validate:"required"`
}

// BalloonResponse is the wire shape of a balloon.
type BalloonResponse struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ColorID     *int16    `json:"colorId,omitempty"`
	TagIconID   *int16    `json:"tagIconId,omitempty"`
	IsPublic    bool      `json:"isPublic"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SelectionResponse is the wire shape of the current selection. BalloonID is
// null when the user has nothing selected.
type SelectionResponse struct {
	BalloonID *uuid.UUID `json:"balloonId"`
}

// CreateBalloon handles creating a user-owned balloon
func (h *BalloonHandler) CreateBalloon(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateBalloonRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "リクエストボディを解析できません")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	balloon, err := h.balloonUC.CreateBalloon(c.Request().Context(), userID, usecase.CreateBalloonInput{
		Title:       req.Title,
		Description: req.Description,
		ColorID:     req.ColorID,
		TagIconID:   req.TagIconID,
		IsPublic:    *req.IsPublic,
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusCreated, toBalloonResponse(balloon))
}

// ListPublicBalloons handles listing active public balloons
func (h *BalloonHandler) ListPublicBalloons(c echo.Context) error {
	balloons, err := h.balloonUC.ListPublicBalloons(c.Request().Context(), queryInt(c, "limit", 0), queryInt(c, "offset", 0))
	if err != nil {
		return err
	}

	out := make([]*BalloonResponse, 0, len(balloons))
	for _, balloon := range balloons {
		out = append(out, toBalloonResponse(balloon))
	}

	return response.JSON(c, http.StatusOK, out)
}

// GetSelection returns the caller's active selection
func (h *BalloonHandler) GetSelection(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	balloonID, err := h.balloonUC.GetSelectedBalloon(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	resp := &SelectionResponse{}
	if balloonID != uuid.Nil {
		resp.BalloonID = &balloonID
	}

	return response.JSON(c, http.StatusOK, resp)
}

// SetSelection activates a selection for the caller
func (h *BalloonHandler) SetSelection(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req SetSelectionRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "リクエストボディを解析できません")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.balloonUC.SetSelectedBalloon(c.Request().Context(), userID, req.BalloonID); err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, map[string]string{"message": "風船を選択しました"})
}

func toBalloonResponse(balloon *entity.Balloon) *BalloonResponse {
	return &BalloonResponse{
		ID:          balloon.ID,
		Type:        balloon.BalloonType.Name(),
		Title:       balloon.Title,
		Description: balloon.Description,
		ColorID:     balloon.ColorID,
		TagIconID:   balloon.TagIconID,
		IsPublic:    balloon.IsPublic(),
		IsActive:    balloon.IsActive,
		CreatedAt:   balloon.CreatedAt,
	}
}
