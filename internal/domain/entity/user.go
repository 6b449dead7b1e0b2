// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"tasbal/internal/domain/division"

	"github.com/google/uuid"
)

// User is the core account entity. Accounts start as guests and may later be
// linked to an identity provider; they are never hard-deleted (soft delete
// via DeletedAt).
type User struct {
	ID          uuid.UUID          // The unique identifier for the account.
	Handle      string             // The public handle. Auto-generated at guest registration when not supplied.
	Plan        division.UserPlan  // The subscription tier.
	IsGuest     bool               // True while the account has not been linked to a provider.
	AuthState   division.AuthState // The authentication state.
	CreatedAt   time.Time          // Timestamp of account creation.
	UpdatedAt   time.Time          // Timestamp of the last modification.
	LastLoginAt *time.Time         // Timestamp of the last login, nil if never logged in.
	DeletedAt   *time.Time         // Soft-delete timestamp, nil while the account is live.
}

// IsDeleted reports whether the account has been soft-deleted.
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// UserSettings holds the per-user preferences, 1:1 with User. Created
// alongside the account at registration and mutated only by an explicit
// settings update.
type UserSettings struct {
	UserID        uuid.UUID              // Foreign key to the owning User.
	CountryCode   string                 // ISO country code used for locale and Location balloons.
	RenderQuality division.RenderQuality // Client rendering quality preference.
	AutoLowPower  bool                   // Whether the client may drop quality automatically on low battery.
	UpdatedAt     time.Time              // Timestamp of the last modification.
}
