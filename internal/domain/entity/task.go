package entity

import (
	"time"

	"tasbal/internal/domain/division"

	"github.com/google/uuid"
)

// Task belongs to exactly one user. Completion, archival and soft deletion
// are tracked by three independent nullable timestamps; the status code and
// the timestamps are deliberately not collapsed into a single state machine.
type Task struct {
	ID          uuid.UUID           // The unique identifier for the task.
	UserID      uuid.UUID           // The owning user.
	Title       string              // The task title.
	Memo        string              // Optional free-form memo.
	DueAt       *time.Time          // Optional due date.
	Status      division.TaskStatus // Lifecycle status code.
	Pinned      bool                // Whether the task is pinned in listings.
	CompletedAt *time.Time          // Set when the task was last marked done.
	ArchivedAt  *time.Time          // Set when the task was archived.
	CreatedAt   time.Time           // Timestamp of creation.
	UpdatedAt   time.Time           // Timestamp of the last modification.
	DeletedAt   *time.Time          // Soft-delete timestamp.
	TagIDs      []uuid.UUID         // Associated tag IDs, possibly empty.
}

// IsDone reports whether the status code is Done. This is independent of
// CompletedAt: the timestamp records when the transition happened.
func (t *Task) IsDone() bool {
	return t.Status == division.TaskStatusDone
}

// IsArchived reports whether the task has been archived.
func (t *Task) IsArchived() bool {
	return t.ArchivedAt != nil
}

// IsDeleted reports whether the task has been soft-deleted.
func (t *Task) IsDeleted() bool {
	return t.DeletedAt != nil
}
