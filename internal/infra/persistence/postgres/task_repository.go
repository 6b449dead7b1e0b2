package postgres

import (
	"context"
	"time"

	"tasbal/internal/domain/division"
	"tasbal/internal/domain/entity"
	domainerrors "tasbal/internal/domain/errors"
	"tasbal/internal/domain/repository"
	"tasbal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// taskRepository implements the domain's TaskRepository against the task
// routines. Ownership checks happen inside the routines: every call carries
// the caller's user ID and rows belonging to other users simply do not come
// back.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

// Create persists a new task in the initial status.
func (repo *taskRepository) Create(ctx context.Context, userID uuid.UUID, title, memo string, dueAt *time.Time) (*entity.Task, error) {
	var row model.TaskRow
	result := repo.db.WithContext(ctx).
		Raw(routineCall(spCreateTask, 4), userID, title, nullIfEmpty(memo), dueAt).
		Scan(&row)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create task")
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.NewDatabaseExecuteError(gorm.ErrRecordNotFound, "task routine returned no row")
	}

	return toTaskEntity(&row), nil
}

// FindByUser retrieves the user's live tasks, newest first.
func (repo *taskRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Task, error) {
	var rows []model.TaskRow
	result := repo.db.WithContext(ctx).
		Raw(routineCall(spGetTasks, 3), userID, limit, offset).
		Scan(&rows)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to list tasks")
	}

	tasks := make([]*entity.Task, 0, len(rows))
	for i := range rows {
		tasks = append(tasks, toTaskEntity(&rows[i]))
	}

	return tasks, nil
}

// FindByID retrieves a single task scoped to its owner.
func (repo *taskRepository) FindByID(ctx context.Context, taskID, userID uuid.UUID) (*entity.Task, error) {
	var row model.TaskRow
	result := repo.db.WithContext(ctx).
		Raw(routineCall(spGetTaskByID, 2), taskID, userID).
		Scan(&row)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to find task by id")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrTaskNotFound
	}

	return toTaskEntity(&row), nil
}

// Update overwrites title, memo, due date and pin flag, returning the stored
// state.
func (repo *taskRepository) Update(ctx context.Context, taskID, userID uuid.UUID, input repository.UpdateTaskInput) (*entity.Task, error) {
	var row model.TaskRow
	result := repo.db.WithContext(ctx).
		Raw(routineCall(spUpdateTask, 6), taskID, userID, input.Title, nullIfEmpty(input.Memo), input.DueAt, input.Pinned).
		Scan(&row)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update task")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrTaskNotFound
	}

	return toTaskEntity(&row), nil
}

// ToggleCompletion sets or clears the done status and returns the stored
// state. The routine compares the prior status inside its UPDATE and
// reports whether this call moved the task from not-done to done, so the
// decision does not depend on a separate read.
func (repo *taskRepository) ToggleCompletion(ctx context.Context, taskID, userID uuid.UUID, isDone bool) (*entity.Task, bool, error) {
	var row model.TaskToggleRow
	result := repo.db.WithContext(ctx).
		Raw(routineCall(spToggleTaskCompletion, 3), taskID, userID, isDone).
		Scan(&row)
	if result.Error != nil {
		return nil, false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to toggle task completion")
	}
	if result.RowsAffected == 0 {
		return nil, false, repository.ErrTaskNotFound
	}

	return toTaskEntity(&row.TaskRow), row.Transitioned, nil
}

// Delete soft-deletes the task. The routine yields the deleted row's ID, so
// an empty result means the task was never visible to this user.
func (repo *taskRepository) Delete(ctx context.Context, taskID, userID uuid.UUID) error {
	var row model.TaskRow
	result := repo.db.WithContext(ctx).
		Raw(routineCall(spDeleteTask, 2), taskID, userID).
		Scan(&row)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// toTaskEntity maps a routine result row back to a pure domain entity.
func toTaskEntity(row *model.TaskRow) *entity.Task {
	status, ok := division.TaskStatusFromValue(row.Status)
	if !ok {
		status = division.DefaultTaskStatus()
	}

	var memo string
	if row.Memo != nil {
		memo = *row.Memo
	}

	return &entity.Task{
		ID:          row.ID,
		UserID:      row.UserID,
		Title:       row.Title,
		Memo:        memo,
		DueAt:       row.DueAt,
		Status:      status,
		Pinned:      row.Pinned,
		CompletedAt: row.CompletedAt,
		ArchivedAt:  row.ArchivedAt,
		DeletedAt:   row.DeletedAt,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		TagIDs:      row.TagIDs,
	}
}
