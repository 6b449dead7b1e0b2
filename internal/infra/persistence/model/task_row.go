package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskRow mirrors the result set of the task routines. tag_ids arrives as a
// uuid[] literal and is decoded by UUIDArray.
type TaskRow struct {
	ID          uuid.UUID  `gorm:"column:id"`
	UserID      uuid.UUID  `gorm:"column:user_id"`
	Title       string     `gorm:"column:title"`
	Memo        *string    `gorm:"column:memo"`
	DueAt       *time.Time `gorm:"column:due_at"`
	Status      int16      `gorm:"column:status"`
	Pinned      bool       `gorm:"column:pinned"`
	CompletedAt *time.Time `gorm:"column:completed_at"`
	ArchivedAt  *time.Time `gorm:"column:archived_at"`
	DeletedAt   *time.Time `gorm:"column:deleted_at"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
	TagIDs      UUIDArray  `gorm:"column:tag_ids"`
}

// TaskToggleRow mirrors the result set of sp_toggle_task_completion. The
// routine compares the prior status inside its UPDATE and reports in
// transitioned whether this call moved the task from not-done to done.
type TaskToggleRow struct {
	TaskRow
	Transitioned bool `gorm:"column:transitioned"`
}
