package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tasbal/internal/domain/division"
	"tasbal/internal/domain/entity"
	domainerrors "tasbal/internal/domain/errors"
	"tasbal/internal/domain/repository"
	mockRepo "tasbal/internal/mocks/repository"
	mockService "tasbal/internal/mocks/service"
	"tasbal/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestTaskService(taskRepo repository.TaskRepository, txManager repository.TransactionManager) usecase.TaskUsecase {
	return NewTaskService(taskRepo, txManager, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// passthroughExecute makes the transaction manager run the callback against
// the given factory, the way the real manager runs it against a tx-bound one.
func passthroughExecute(t *testing.T, txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestTaskService_CreateTask(t *testing.T) {
	mockTaskRepo := mockRepo.NewMockTaskRepository(t)
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	service := newTestTaskService(mockTaskRepo, mockTxManager)

	ctx := context.Background()
	userID := uuid.New()
	expected := &entity.Task{
		ID:     uuid.New(),
		UserID: userID,
		Title:  "牛乳を買う",
		Status: division.TaskStatusTodo,
	}

	mockTaskRepo.EXPECT().
		Create(ctx, userID, "牛乳を買う", "", (*time.Time)(nil)).
		Return(expected, nil)

	task, err := service.CreateTask(ctx, userID, usecase.CreateTaskInput{Title: "牛乳を買う"})
	require.NoError(t, err)
	assert.Equal(t, expected, task)
	assert.False(t, task.IsDone())
}

func TestTaskService_GetTask_NotFound(t *testing.T) {
	mockTaskRepo := mockRepo.NewMockTaskRepository(t)
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	service := newTestTaskService(mockTaskRepo, mockTxManager)

	ctx := context.Background()
	taskID := uuid.New()
	userID := uuid.New()

	mockTaskRepo.EXPECT().
		FindByID(ctx, taskID, userID).
		Return(nil, repository.ErrTaskNotFound)

	task, err := service.GetTask(ctx, taskID, userID)
	require.Error(t, err)
	assert.Nil(t, task)
	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
}

func TestTaskService_ToggleCompletion_RecordsOneContribution(t *testing.T) {
	mockTaskRepo := mockRepo.NewMockTaskRepository(t)
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockBalloonRepo := mockRepo.NewMockBalloonRepository(t)
	mockLedger := mockService.NewMockContributionLedger(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := newTestTaskService(mockTaskRepo, mockTxManager)

	ctx := context.Background()
	taskID := uuid.New()
	userID := uuid.New()
	balloonID := uuid.New()
	now := time.Now()

	passthroughExecute(t, mockTxManager, factory)
	factory.EXPECT().NewTaskRepository().Return(mockTaskRepo)
	factory.EXPECT().NewBalloonRepository().Return(mockBalloonRepo)
	factory.EXPECT().NewContributionLedger().Return(mockLedger)

	mockTaskRepo.EXPECT().
		ToggleCompletion(ctx, taskID, userID, true).
		Return(&entity.Task{ID: taskID, UserID: userID, Status: division.TaskStatusDone, CompletedAt: &now}, true, nil)
	mockBalloonRepo.EXPECT().
		FindSelected(ctx, userID).
		Return(balloonID, nil)
	mockLedger.EXPECT().
		Record(ctx, balloonID, userID, division.ContributionSourceTask, int64(1)).
		Return(nil, nil).
		Once()

	result, err := service.ToggleCompletion(ctx, taskID, userID, true)
	require.NoError(t, err)
	require.NotNil(t, result.Task)
	assert.True(t, result.Task.IsDone())
	assert.Nil(t, result.Pop)
}

func TestTaskService_ToggleCompletion_AlreadyDoneDoesNotContribute(t *testing.T) {
	mockTaskRepo := mockRepo.NewMockTaskRepository(t)
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := newTestTaskService(mockTaskRepo, mockTxManager)

	ctx := context.Background()
	taskID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	passthroughExecute(t, mockTxManager, factory)
	factory.EXPECT().NewTaskRepository().Return(mockTaskRepo)

	// The routine saw the task already done inside its own update, so it
	// reports no transition and the ledger must never be touched, even
	// though the request asked for done.
	mockTaskRepo.EXPECT().
		ToggleCompletion(ctx, taskID, userID, true).
		Return(&entity.Task{ID: taskID, UserID: userID, Status: division.TaskStatusDone, CompletedAt: &now}, false, nil)

	result, err := service.ToggleCompletion(ctx, taskID, userID, true)
	require.NoError(t, err)
	assert.True(t, result.Task.IsDone())
	assert.Nil(t, result.Pop)
}

func TestTaskService_ToggleCompletion_ToggleOffRetractsNothing(t *testing.T) {
	mockTaskRepo := mockRepo.NewMockTaskRepository(t)
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := newTestTaskService(mockTaskRepo, mockTxManager)

	ctx := context.Background()
	taskID := uuid.New()
	userID := uuid.New()

	passthroughExecute(t, mockTxManager, factory)
	factory.EXPECT().NewTaskRepository().Return(mockTaskRepo)

	mockTaskRepo.EXPECT().
		ToggleCompletion(ctx, taskID, userID, false).
		Return(&entity.Task{ID: taskID, UserID: userID, Status: division.TaskStatusTodo}, false, nil)

	result, err := service.ToggleCompletion(ctx, taskID, userID, false)
	require.NoError(t, err)
	assert.False(t, result.Task.IsDone())
	assert.Nil(t, result.Pop)
}

func TestTaskService_ToggleCompletion_NoSelectionSkipsContribution(t *testing.T) {
	mockTaskRepo := mockRepo.NewMockTaskRepository(t)
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockBalloonRepo := mockRepo.NewMockBalloonRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := newTestTaskService(mockTaskRepo, mockTxManager)

	ctx := context.Background()
	taskID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	passthroughExecute(t, mockTxManager, factory)
	factory.EXPECT().NewTaskRepository().Return(mockTaskRepo)
	factory.EXPECT().NewBalloonRepository().Return(mockBalloonRepo)

	mockTaskRepo.EXPECT().
		ToggleCompletion(ctx, taskID, userID, true).
		Return(&entity.Task{ID: taskID, UserID: userID, Status: division.TaskStatusDone, CompletedAt: &now}, true, nil)
	mockBalloonRepo.EXPECT().
		FindSelected(ctx, userID).
		Return(uuid.Nil, repository.ErrNoSelection)

	result, err := service.ToggleCompletion(ctx, taskID, userID, true)
	require.NoError(t, err)
	assert.True(t, result.Task.IsDone())
	assert.Nil(t, result.Pop)
}

func TestTaskService_ToggleCompletion_PropagatesPop(t *testing.T) {
	mockTaskRepo := mockRepo.NewMockTaskRepository(t)
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockBalloonRepo := mockRepo.NewMockBalloonRepository(t)
	mockLedger := mockService.NewMockContributionLedger(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := newTestTaskService(mockTaskRepo, mockTxManager)

	ctx := context.Background()
	taskID := uuid.New()
	userID := uuid.New()
	balloonID := uuid.New()
	now := time.Now()
	pop := &entity.PopEvent{
		BalloonID:   balloonID,
		ContextType: division.PopContextTask,
		Progress:    100,
		Threshold:   100,
		PoppedAt:    now,
	}

	passthroughExecute(t, mockTxManager, factory)
	factory.EXPECT().NewTaskRepository().Return(mockTaskRepo)
	factory.EXPECT().NewBalloonRepository().Return(mockBalloonRepo)
	factory.EXPECT().NewContributionLedger().Return(mockLedger)

	mockTaskRepo.EXPECT().
		ToggleCompletion(ctx, taskID, userID, true).
		Return(&entity.Task{ID: taskID, UserID: userID, Status: division.TaskStatusDone, CompletedAt: &now}, true, nil)
	mockBalloonRepo.EXPECT().
		FindSelected(ctx, userID).
		Return(balloonID, nil)
	mockLedger.EXPECT().
		Record(ctx, balloonID, userID, division.ContributionSourceTask, int64(1)).
		Return(pop, nil)

	result, err := service.ToggleCompletion(ctx, taskID, userID, true)
	require.NoError(t, err)
	require.NotNil(t, result.Pop)
	assert.Equal(t, pop, result.Pop)
	assert.Equal(t, division.PopContextTask, result.Pop.ContextType)
}

func TestTaskService_ToggleCompletion_NotFound(t *testing.T) {
	mockTaskRepo := mockRepo.NewMockTaskRepository(t)
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := newTestTaskService(mockTaskRepo, mockTxManager)

	ctx := context.Background()
	taskID := uuid.New()
	userID := uuid.New()

	passthroughExecute(t, mockTxManager, factory)
	factory.EXPECT().NewTaskRepository().Return(mockTaskRepo)

	mockTaskRepo.EXPECT().
		ToggleCompletion(ctx, taskID, userID, true).
		Return(nil, false, repository.ErrTaskNotFound)

	result, err := service.ToggleCompletion(ctx, taskID, userID, true)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
}

func TestTaskService_DeleteTask_NotFound(t *testing.T) {
	mockTaskRepo := mockRepo.NewMockTaskRepository(t)
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	service := newTestTaskService(mockTaskRepo, mockTxManager)

	ctx := context.Background()
	taskID := uuid.New()
	userID := uuid.New()

	mockTaskRepo.EXPECT().
		Delete(ctx, taskID, userID).
		Return(repository.ErrTaskNotFound)

	err := service.DeleteTask(ctx, taskID, userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
}
