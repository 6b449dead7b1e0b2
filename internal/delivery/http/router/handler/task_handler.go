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

// TaskHandlerParams holds dependencies for TaskHandler, injected by Fx.
type TaskHandlerParams struct {
	fx.In

	TaskUC usecase.TaskUsecase
	Logger *slog.Logger
}

// TaskHandler holds dependencies for task-related handlers
type TaskHandler struct {
	taskUC usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler
func NewTaskHandler(params TaskHandlerParams) *TaskHandler {
	return &TaskHandler{
		taskUC: params.TaskUC,
		logger: params.Logger,
	}
}

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	Title string     `json:"title" validate:"required,max=500"`
	Memo  string     `json:"memo" validate:"max=2000"`
	DueAt *time.Time `json:"dueAt"`
}

// UpdateTaskRequest represents the request body for updating a task
type UpdateTaskRequest struct {
	Title  string     `json:"title" validate:"required,max=500"`
	Memo   string     `json:"memo" validate:"max=2000"`
	DueAt  *time.Time `json:"dueAt"`
	Pinned *bool      `json:"pinned"`
}

// ToggleDoneRequest represents the request body for a completion toggle
type ToggleDoneRequest struct {
	IsDone *bool `json:"isDone" validate:"required"`
}

// TaskResponse is the wire shape of a task.
type TaskResponse struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Memo        string      `json:"memo,omitempty"`
	DueAt       *time.Time  `json:"dueAt,omitempty"`
	Status      int16       `json:"status"`
	StatusName  string      `json:"statusName"`
	IsDone      bool        `json:"isDone"`
	Pinned      bool        `json:"pinned"`
	CompletedAt *time.Time  `json:"completedAt,omitempty"`
	TagIDs      []uuid.UUID `json:"tagIds"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// PopEventResponse reports that a completion made a balloon pop.
type PopEventResponse struct {
	BalloonID uuid.UUID `json:"balloonId"`
	Progress  int64     `json:"progress"`
	Threshold int64     `json:"threshold"`
	PoppedAt  time.Time `json:"poppedAt"`
}

// ToggleDoneResponse is the wire shape of a completion toggle: the stored
// task fields at the top level plus a pop event when one occurred.
type ToggleDoneResponse struct {
	TaskResponse
	Pop *PopEventResponse `json:"pop,omitempty"`
}

// CreateTask handles creating a new task
func (h *TaskHandler) CreateTask(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "リクエストボディを解析できません")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.taskUC.CreateTask(c.Request().Context(), userID, usecase.CreateTaskInput{
		Title: req.Title,
		Memo:  req.Memo,
		DueAt: req.DueAt,
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusCreated, toTaskResponse(task))
}

// ListTasks handles listing the caller's tasks
func (h *TaskHandler) ListTasks(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskUC.ListTasks(c.Request().Context(), userID, queryInt(c, "limit", 0), queryInt(c, "offset", 0))
	if err != nil {
		return err
	}

	out := make([]*TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, toTaskResponse(task))
	}

	return response.JSON(c, http.StatusOK, out)
}

// GetTask handles retrieving a single task
func (h *TaskHandler) GetTask(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "タスクIDが不正です")
	}

	task, err := h.taskUC.GetTask(c.Request().Context(), taskID, userID)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, toTaskResponse(task))
}

// UpdateTask handles updating a task
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "タスクIDが不正です")
	}

	var req UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "リクエストボディを解析できません")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.taskUC.UpdateTask(c.Request().Context(), taskID, userID, usecase.UpdateTaskInput{
		Title:  req.Title,
		Memo:   req.Memo,
		DueAt:  req.DueAt,
		Pinned: req.Pinned,
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, toTaskResponse(task))
}

// ToggleDone handles setting or clearing the completion flag
func (h *TaskHandler) ToggleDone(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "タスクIDが不正です")
	}

	var req ToggleDoneRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "リクエストボディを解析できません")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.taskUC.ToggleCompletion(c.Request().Context(), taskID, userID, *req.IsDone)
	if err != nil {
		return err
	}

	resp := &ToggleDoneResponse{TaskResponse: *toTaskResponse(result.Task)}
	if result.Pop != nil {
		resp.Pop = &PopEventResponse{
			BalloonID: result.Pop.BalloonID,
			Progress:  result.Pop.Progress,
			Threshold: result.Pop.Threshold,
			PoppedAt:  result.Pop.PoppedAt,
		}
	}

	return response.JSON(c, http.StatusOK, resp)
}

// DeleteTask handles soft-deleting a task
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "タスクIDが不正です")
	}

	if err := h.taskUC.DeleteTask(c.Request().Context(), taskID, userID); err != nil {
		return err
	}

	return response.NoContent(c)
}

func toTaskResponse(task *entity.Task) *TaskResponse {
	tagIDs := task.TagIDs
	if tagIDs == nil {
		tagIDs = []uuid.UUID{}
	}

	return &TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Memo:        task.Memo,
		DueAt:       task.DueAt,
		Status:      task.Status.Value(),
		StatusName:  task.Status.DisplayName(),
		IsDone:      task.IsDone(),
		Pinned:      task.Pinned,
		CompletedAt: task.CompletedAt,
		TagIDs:      tagIDs,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}
