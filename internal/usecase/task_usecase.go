package usecase

import (
	"context"
	"time"

	"tasbal/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTaskInput carries the fields of a new task.
type CreateTaskInput struct {
	Title string
	Memo  string
	DueAt *time.Time
}

// UpdateTaskInput carries the mutable fields of a task update. Nil pointer
// fields keep the stored value.
type UpdateTaskInput struct {
	Title  string
	Memo   string
	DueAt  *time.Time
	Pinned *bool
}

// ToggleResult is the outcome of a completion toggle: the stored task plus
// the pop event when the completion made a balloon cross its threshold.
type ToggleResult struct {
	Task *entity.Task
	Pop  *entity.PopEvent
}

// TaskUsecase defines the use cases around tasks. Every operation is scoped
// by the owning user; another user's task behaves as absent.
type TaskUsecase interface {
	// CreateTask persists a new task in the Todo status.
	CreateTask(ctx context.Context, userID uuid.UUID, input CreateTaskInput) (*entity.Task, error)

	// ListTasks returns the user's live tasks, newest first, at most limit
	// rows starting at offset.
	ListTasks(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Task, error)

	// GetTask returns one task, or a not-found error.
	GetTask(ctx context.Context, taskID, userID uuid.UUID) (*entity.Task, error)

	// UpdateTask modifies title, memo, due date and pin flag.
	UpdateTask(ctx context.Context, taskID, userID uuid.UUID, input UpdateTaskInput) (*entity.Task, error)

	// ToggleCompletion sets or clears the Done status. A not-done to done
	// transition records one contribution against the user's selected
	// balloon in the same transaction; toggling off retracts nothing.
	ToggleCompletion(ctx context.Context, taskID, userID uuid.UUID, isDone bool) (*ToggleResult, error)

	// DeleteTask soft-deletes the task.
	DeleteTask(ctx context.Context, taskID, userID uuid.UUID) error
}
