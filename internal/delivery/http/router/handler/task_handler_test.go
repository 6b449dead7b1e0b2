package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	deliverycontext "tasbal/internal/delivery/context"
	httpmiddleware "tasbal/internal/delivery/http/middleware"
	"tasbal/internal/delivery/http/response"
	"tasbal/internal/domain/division"
	"tasbal/internal/domain/entity"
	domainerrors "tasbal/internal/domain/errors"
	"tasbal/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTaskUsecase struct {
	createTask       func(ctx context.Context, userID uuid.UUID, input usecase.CreateTaskInput) (*entity.Task, error)
	listTasks        func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Task, error)
	getTask          func(ctx context.Context, taskID, userID uuid.UUID) (*entity.Task, error)
	updateTask       func(ctx context.Context, taskID, userID uuid.UUID, input usecase.UpdateTaskInput) (*entity.Task, error)
	toggleCompletion func(ctx context.Context, taskID, userID uuid.UUID, isDone bool) (*usecase.ToggleResult, error)
	deleteTask       func(ctx context.Context, taskID, userID uuid.UUID) error
}

func (s *stubTaskUsecase) CreateTask(ctx context.Context, userID uuid.UUID, input usecase.CreateTaskInput) (*entity.Task, error) {
	return s.createTask(ctx, userID, input)
}

func (s *stubTaskUsecase) ListTasks(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Task, error) {
	return s.listTasks(ctx, userID, limit, offset)
}

func (s *stubTaskUsecase) GetTask(ctx context.Context, taskID, userID uuid.UUID) (*entity.Task, error) {
	return s.getTask(ctx, taskID, userID)
}

func (s *stubTaskUsecase) UpdateTask(ctx context.Context, taskID, userID uuid.UUID, input usecase.UpdateTaskInput) (*entity.Task, error) {
	return s.updateTask(ctx, taskID, userID, input)
}

func (s *stubTaskUsecase) ToggleCompletion(ctx context.Context, taskID, userID uuid.UUID, isDone bool) (*usecase.ToggleResult, error) {
	return s.toggleCompletion(ctx, taskID, userID, isDone)
}

func (s *stubTaskUsecase) DeleteTask(ctx context.Context, taskID, userID uuid.UUID) error {
	return s.deleteTask(ctx, taskID, userID)
}

func TestTaskHandler_CreateTask(t *testing.T) {
	userID := uuid.New()
	taskID := uuid.New()
	handler := &TaskHandler{
		taskUC: &stubTaskUsecase{
			createTask: func(_ context.Context, gotUserID uuid.UUID, input usecase.CreateTaskInput) (*entity.Task, error) {
				assert.Equal(t, userID, gotUserID)
				assert.Equal(t, "牛乳を買う", input.Title)

				return &entity.Task{
					ID:        taskID,
					UserID:    userID,
					Title:     input.Title,
					Status:    division.TaskStatusTodo,
					CreatedAt: time.Now(),
					UpdatedAt: time.Now(),
				}, nil
			},
		},
		logger: discardLogger(),
	}

	c, rec := newTestContext(http.MethodPost, "/api/v1/tasks", `{"title":"牛乳を買う"}`)
	deliverycontext.SetUserID(c, userID)

	err := handler.CreateTask(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp TaskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, taskID, resp.ID)
	assert.Equal(t, "未着手", resp.StatusName)
	assert.False(t, resp.IsDone)
	assert.NotNil(t, resp.TagIDs)
}

func TestTaskHandler_CreateTask_MissingTitle(t *testing.T) {
	handler := &TaskHandler{taskUC: &stubTaskUsecase{}, logger: discardLogger()}

	c, _ := newTestContext(http.MethodPost, "/api/v1/tasks", `{"memo":"買い物"}`)
	deliverycontext.SetUserID(c, uuid.New())

	err := handler.CreateTask(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}

func TestTaskHandler_ToggleDone_WithPop(t *testing.T) {
	userID := uuid.New()
	taskID := uuid.New()
	balloonID := uuid.New()
	now := time.Now()

	handler := &TaskHandler{
		taskUC: &stubTaskUsecase{
			toggleCompletion: func(_ context.Context, gotTaskID, gotUserID uuid.UUID, isDone bool) (*usecase.ToggleResult, error) {
				assert.Equal(t, taskID, gotTaskID)
				assert.Equal(t, userID, gotUserID)
				assert.True(t, isDone)

				return &usecase.ToggleResult{
					Task: &entity.Task{
						ID:          taskID,
						UserID:      userID,
						Title:       "牛乳を買う",
						Status:      division.TaskStatusDone,
						CompletedAt: &now,
					},
					Pop: &entity.PopEvent{
						BalloonID:   balloonID,
						ContextType: division.PopContextTask,
						Progress:    100,
						Threshold:   100,
						PoppedAt:    now,
					},
				}, nil
			},
		},
		logger: discardLogger(),
	}

	c, rec := newTestContext(http.MethodPost, "/api/v1/tasks/"+taskID.String()+"/toggle-done", `{"isDone":true}`)
	c.SetParamNames("id")
	c.SetParamValues(taskID.String())
	deliverycontext.SetUserID(c, userID)

	err := handler.ToggleDone(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ToggleDoneResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, taskID, resp.ID)
	assert.True(t, resp.IsDone)
	require.NotNil(t, resp.CompletedAt)
	require.NotNil(t, resp.Pop)
	assert.Equal(t, balloonID, resp.Pop.BalloonID)
	assert.Equal(t, int64(100), resp.Pop.Progress)

	// The task fields sit at the top level of the body, not nested.
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Contains(t, raw, "isDone")
	assert.Contains(t, raw, "completedAt")
	assert.NotContains(t, raw, "task")
}

func TestTaskHandler_ToggleDone_WithoutPop(t *testing.T) {
	userID := uuid.New()
	taskID := uuid.New()

	handler := &TaskHandler{
		taskUC: &stubTaskUsecase{
			toggleCompletion: func(_ context.Context, _, _ uuid.UUID, isDone bool) (*usecase.ToggleResult, error) {
				assert.False(t, isDone)

				return &usecase.ToggleResult{
					Task: &entity.Task{ID: taskID, UserID: userID, Title: "牛乳を買う", Status: division.TaskStatusTodo},
				}, nil
			},
		},
		logger: discardLogger(),
	}

	c, rec := newTestContext(http.MethodPost, "/api/v1/tasks/"+taskID.String()+"/toggle-done", `{"isDone":false}`)
	c.SetParamNames("id")
	c.SetParamValues(taskID.String())
	deliverycontext.SetUserID(c, userID)

	err := handler.ToggleDone(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"pop"`)
	assert.NotContains(t, rec.Body.String(), `"task"`)
	assert.Contains(t, rec.Body.String(), `"isDone":false`)
}

func TestTaskHandler_GetTask_InvalidID(t *testing.T) {
	handler := &TaskHandler{taskUC: &stubTaskUsecase{}, logger: discardLogger()}

	c, rec := newTestContext(http.MethodGet, "/api/v1/tasks/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	deliverycontext.SetUserID(c, uuid.New())

	err := handler.GetTask(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestTaskHandler_GetTask_NotFoundEnvelope(t *testing.T) {
	taskID := uuid.New()
	handler := &TaskHandler{
		taskUC: &stubTaskUsecase{
			getTask: func(_ context.Context, _, _ uuid.UUID) (*entity.Task, error) {
				return nil, domainerrors.ErrTaskNotFound
			},
		},
		logger: discardLogger(),
	}

	c, rec := newTestContext(http.MethodGet, "/api/v1/tasks/"+taskID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(taskID.String())
	deliverycontext.SetUserID(c, uuid.New())

	err := handler.GetTask(c)
	require.Error(t, err)

	httpmiddleware.NewErrorMiddleware(discardLogger()).HandleHTTPError(err, c)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "TASK_NOT_FOUND", body.Error.Code)
	assert.Equal(t, "タスクが見つかりません", body.Error.Message)
}

func TestTaskHandler_DeleteTask(t *testing.T) {
	userID := uuid.New()
	taskID := uuid.New()
	handler := &TaskHandler{
		taskUC: &stubTaskUsecase{
			deleteTask: func(_ context.Context, gotTaskID, gotUserID uuid.UUID) error {
				assert.Equal(t, taskID, gotTaskID)
				assert.Equal(t, userID, gotUserID)

				return nil
			},
		},
		logger: discardLogger(),
	}

	c, rec := newTestContext(http.MethodDelete, "/api/v1/tasks/"+taskID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(taskID.String())
	deliverycontext.SetUserID(c, userID)

	err := handler.DeleteTask(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
