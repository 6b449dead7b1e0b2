package repository

import (
	"context"
	"errors"
	"time"

	"tasbal/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTaskNotFound is returned when a task does not exist, is soft-deleted,
// or is owned by a different user. Ownership violations are indistinguishable
// from absence: the routines filter on (task_id, user_id).
var ErrTaskNotFound = errors.New("task not found")

// UpdateTaskInput carries the mutable task fields for an update call.
// Nil pointer fields keep the stored value.
type UpdateTaskInput struct {
	Title  string
	Memo   string
	DueAt  *time.Time
	Pinned *bool
}

// TaskRepository defines the standard operations for task persistence.
// Every operation is scoped by the owning user; calls against another
// user's task yield no row.
type TaskRepository interface {
	// Create persists a new task in the Todo status and returns the stored row.
	Create(ctx context.Context, userID uuid.UUID, title, memo string, dueAt *time.Time) (*entity.Task, error)

	// FindByUser lists the user's live tasks ordered by creation time
	// descending. Soft-deleted tasks are never returned.
	FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Task, error)

	// FindByID retrieves one task owned by the user.
	FindByID(ctx context.Context, taskID, userID uuid.UUID) (*entity.Task, error)

	// Update modifies title, memo, due date and pin flag, returning the stored row.
	Update(ctx context.Context, taskID, userID uuid.UUID, input UpdateTaskInput) (*entity.Task, error)

	// ToggleCompletion sets or clears the Done status in one atomic update,
	// returning the stored row and whether this call performed the not-done
	// to done transition. The routine inspects the prior status inside the
	// same UPDATE, so concurrent toggles of one task cannot both report the
	// transition.
	ToggleCompletion(ctx context.Context, taskID, userID uuid.UUID, isDone bool) (*entity.Task, bool, error)

	// Delete soft-deletes the task.
	Delete(ctx context.Context, taskID, userID uuid.UUID) error
}
