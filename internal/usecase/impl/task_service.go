package impl

import (
	"context"
	"log/slog"

	"tasbal/internal/domain/division"
	"tasbal/internal/domain/entity"
	domainerrors "tasbal/internal/domain/errors"
	"tasbal/internal/domain/repository"
	"tasbal/internal/errors"
	"tasbal/internal/usecase"

	"github.com/google/uuid"
)

// taskContributionAmount is the progress one task completion adds to the
// selected balloon.
const taskContributionAmount = 1

type taskService struct {
	taskRepo  repository.TaskRepository
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewTaskService creates a new task service instance
func NewTaskService(taskRepo repository.TaskRepository, txManager repository.TransactionManager, logger *slog.Logger) usecase.TaskUsecase {
	return &taskService{
		taskRepo:  taskRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// CreateTask persists a new task in the Todo status.
func (s *taskService) CreateTask(ctx context.Context, userID uuid.UUID, input usecase.CreateTaskInput) (*entity.Task, error) {
	task, err := s.taskRepo.Create(ctx, userID, input.Title, input.Memo, input.DueAt)
	if err != nil {
		return nil, err
	}

	return task, nil
}

// ListTasks returns the user's live tasks, newest first.
func (s *taskService) ListTasks(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Task, error) {
	limit, offset = clampPage(limit, offset)

	tasks, err := s.taskRepo.FindByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return tasks, nil
}

// GetTask returns one task, mapping absence (including another user's task)
// to a 404-class error.
func (s *taskService) GetTask(ctx context.Context, taskID, userID uuid.UUID) (*entity.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task by id")
	}

	return task, nil
}

// UpdateTask modifies title, memo, due date and pin flag.
func (s *taskService) UpdateTask(ctx context.Context, taskID, userID uuid.UUID, input usecase.UpdateTaskInput) (*entity.Task, error) {
	task, err := s.taskRepo.Update(ctx, taskID, userID, repository.UpdateTaskInput{
		Title:  input.Title,
		Memo:   input.Memo,
		DueAt:  input.DueAt,
		Pinned: input.Pinned,
	})
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to update task")
	}

	return task, nil
}

// ToggleCompletion sets or clears the Done status. The toggle and the
// resulting contribution run in one transaction, so a failed contribution
// rolls the toggle back. The routine reports from its atomic update whether
// this call performed the not-done to done transition; only that call
// records progress, so concurrent duplicate toggles cannot contribute
// twice. Toggling off retracts nothing.
func (s *taskService) ToggleCompletion(ctx context.Context, taskID, userID uuid.UUID, isDone bool) (*usecase.ToggleResult, error) {
	result := &usecase.ToggleResult{}

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		task, transitioned, err := f.NewTaskRepository().ToggleCompletion(ctx, taskID, userID, isDone)
		if err != nil {
			return err
		}
		result.Task = task

		if !transitioned {
			return nil
		}

		balloonID, err := f.NewBalloonRepository().FindSelected(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrNoSelection) {
				// Nothing selected: the completion stands on its own.
				return nil
			}

			return err
		}

		pop, err := f.NewContributionLedger().Record(ctx, balloonID, userID, division.ContributionSourceTask, taskContributionAmount)
		if err != nil {
			return err
		}
		result.Pop = pop

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to toggle task completion")
	}

	if result.Pop != nil {
		s.logger.Info("balloon popped",
			slog.String("balloonId", result.Pop.BalloonID.String()),
			slog.String("userId", userID.String()),
			slog.Int64("progress", result.Pop.Progress),
			slog.Int64("threshold", result.Pop.Threshold),
			slog.String("context", result.Pop.ContextType.DisplayName()),
		)
	}

	return result, nil
}

// DeleteTask soft-deletes the task.
func (s *taskService) DeleteTask(ctx context.Context, taskID, userID uuid.UUID) error {
	if err := s.taskRepo.Delete(ctx, taskID, userID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return domainerrors.ErrTaskNotFound
		}

		return errors.Wrap(err, "failed to delete task")
	}

	return nil
}
