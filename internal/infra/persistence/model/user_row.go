// Package model holds the row shapes returned by the database routines.
// The schema is owned by the database; these structs only mirror the
// result-set columns, they are never auto-migrated.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserRow mirrors the result set of the user routines.
type UserRow struct {
	ID          uuid.UUID  `gorm:"column:id"`
	Handle      string     `gorm:"column:handle"`
	Plan        int16      `gorm:"column:plan"`
	IsGuest     bool       `gorm:"column:is_guest"`
	AuthState   int16      `gorm:"column:auth_state"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
	LastLoginAt *time.Time `gorm:"column:last_login_at"`
	DeletedAt   *time.Time `gorm:"column:deleted_at"`
}

// UserSettingsRow mirrors the result set of the settings routines.
type UserSettingsRow struct {
	UserID        uuid.UUID `gorm:"column:user_id"`
	CountryCode   string    `gorm:"column:country_code"`
	RenderQuality int16     `gorm:"column:render_quality"`
	AutoLowPower  bool      `gorm:"column:auto_low_power"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}
