package entity

import (
	"time"

	"tasbal/internal/domain/division"

	"github.com/google/uuid"
)

// Balloon is a shared or personal progress container. Contributions
// accumulate against it and it pops once its server-side threshold is
// crossed. Which optional fields are meaningful depends on BalloonType:
// OwnerUserID is set only for User balloons, CountryCode only for Location
// balloons.
type Balloon struct {
	ID           uuid.UUID                    // The unique identifier for the balloon.
	BalloonType  division.BalloonType         // Category code.
	DisplayGroup division.BalloonDisplayGroup // Screen placement group.
	Visibility   division.BalloonVisibility   // Who can see and select the balloon.
	OwnerUserID  *uuid.UUID                   // Owning user, set only for User balloons.
	Title        string                       // The balloon title.
	Description  string                       // Optional description.
	ColorID      *int16                       // Styling: color palette entry.
	TagIconID    *int16                       // Styling: tag icon entry.
	CountryCode  string                       // ISO country code, set only for Location balloons.
	IsActive     bool                         // Whether the balloon currently accepts contributions.
	CreatedAt    time.Time                    // Timestamp of creation.
	UpdatedAt    time.Time                    // Timestamp of the last modification.
}

// IsPublic reports whether the balloon is visible to everyone.
func (b *Balloon) IsPublic() bool {
	return b.Visibility == division.BalloonVisibilityPublic
}

// BalloonSelection records which balloon a user is contributing to. At most
// one selection per user is active (LeftAt IS NULL); selecting a new balloon
// deactivates the prior row. The invariant is enforced atomically by the
// sp_set_balloon_selection routine.
type BalloonSelection struct {
	UserID     uuid.UUID  // The selecting user.
	BalloonID  uuid.UUID  // The selected balloon.
	Priority   int16      // Ordering hint among historical selections.
	SelectedAt time.Time  // When the selection became active.
	LeftAt     *time.Time // When the selection was deactivated, nil while active.
}

// IsActive reports whether this selection is the user's current one.
func (s *BalloonSelection) IsActive() bool {
	return s.LeftAt == nil
}

// PopEvent describes a balloon crossing its threshold as a result of a
// contribution. It is produced by the storage-side accumulation routine and
// surfaced to the caller that recorded the contribution.
type PopEvent struct {
	BalloonID   uuid.UUID               // The balloon that popped.
	ContextType division.PopContextType // What triggered the pop.
	Progress    int64                   // Accumulated progress at pop time.
	Threshold   int64                   // The configured pop threshold.
	PoppedAt    time.Time               // When the pop was recorded.
}
