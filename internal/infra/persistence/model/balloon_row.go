package model

import (
	"time"

	"github.com/google/uuid"
)

// BalloonRow mirrors the result set of the balloon routines.
type BalloonRow struct {
	ID           uuid.UUID  `gorm:"column:id"`
	BalloonType  int16      `gorm:"column:balloon_type"`
	DisplayGroup int16      `gorm:"column:display_group"`
	Visibility   int16      `gorm:"column:visibility"`
	OwnerUserID  *uuid.UUID `gorm:"column:owner_user_id"`
	Title        string     `gorm:"column:title"`
	Description  *string    `gorm:"column:description"`
	ColorID      *int16     `gorm:"column:color_id"`
	TagIconID    *int16     `gorm:"column:tag_icon_id"`
	CountryCode  *string    `gorm:"column:country_code"`
	IsActive     bool       `gorm:"column:is_active"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

// SelectionRow mirrors the result set of sp_get_balloon_selection and
// sp_set_balloon_selection.
type SelectionRow struct {
	BalloonID uuid.UUID `gorm:"column:balloon_id"`
}

// ContributionRow mirrors the result set of sp_add_balloon_contribution.
// The threshold comparison happens inside the routine; popped reports the
// outcome of this contribution only.
type ContributionRow struct {
	BalloonID      uuid.UUID  `gorm:"column:balloon_id"`
	Progress       int64      `gorm:"column:progress"`
	Threshold      int64      `gorm:"column:threshold"`
	Popped         bool       `gorm:"column:popped"`
	PopContextType int16      `gorm:"column:pop_context_type"`
	PoppedAt       *time.Time `gorm:"column:popped_at"`
}
