package division

// TaskStatus is the lifecycle status code of a task.
type TaskStatus int16

const (
	// TaskStatusTodo means the task has not been started yet.
	TaskStatusTodo TaskStatus = 1
	// TaskStatusInProgress means the task is being worked on.
	TaskStatusInProgress TaskStatus = 2
	// TaskStatusDone means the task has been completed.
	TaskStatusDone TaskStatus = 3
	// TaskStatusArchived means the task has been archived.
	TaskStatusArchived TaskStatus = 4
)

var taskStatuses = newTable(map[TaskStatus]meta{
	TaskStatusTodo:       {displayName: "未着手", isDefault: true, displayOrder: 10},
	TaskStatusInProgress: {displayName: "進行中", displayOrder: 20},
	TaskStatusDone:       {displayName: "完了", displayOrder: 30},
	TaskStatusArchived:   {displayName: "アーカイブ", displayOrder: 40},
})

// Value returns the stable code persisted for this status.
func (s TaskStatus) Value() int16 { return int16(s) }

// DisplayName returns the localized display label, or "" for unknown codes.
func (s TaskStatus) DisplayName() string { return taskStatuses.displayName(s) }

// IsValid reports whether the code belongs to the closed set.
func (s TaskStatus) IsValid() bool { return taskStatuses.isValid(s) }

// TaskStatusFromValue resolves a persisted code back to a status.
func TaskStatusFromValue(value int16) (TaskStatus, bool) {
	return taskStatuses.fromValue(value)
}

// DefaultTaskStatus is the status assigned to newly created tasks.
func DefaultTaskStatus() TaskStatus { return taskStatuses.def }

// TaskStatuses lists all statuses in display order.
func TaskStatuses() []TaskStatus { return taskStatuses.list() }
