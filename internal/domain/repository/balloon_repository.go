package repository

import (
	"context"
	"errors"

	"tasbal/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBalloonNotFound is returned when a balloon does not exist or is not
// selectable (inactive, or not visible to the caller).
var ErrBalloonNotFound = errors.New("balloon not found")

// ErrNoSelection is returned when the user has no active balloon selection.
var ErrNoSelection = errors.New("no active balloon selection")

// CreateBalloonInput carries the fields for a user-created balloon.
type CreateBalloonInput struct {
	Title       string
	Description string
	ColorID     *int16
	TagIconID   *int16
	IsPublic    bool
}

// BalloonRepository defines the operations for balloon persistence and the
// per-user selection of the balloon receiving contributions.
type BalloonRepository interface {
	// Create persists a new User-type balloon owned by ownerUserID and
	// returns the stored row.
	Create(ctx context.Context, ownerUserID uuid.UUID, input CreateBalloonInput) (*entity.Balloon, error)

	// FindPublic lists active public balloons ordered by creation time descending.
	FindPublic(ctx context.Context, limit, offset int) ([]*entity.Balloon, error)

	// FindSelected returns the ID of the user's currently active selection.
	// Returns ErrNoSelection when no selection is active.
	FindSelected(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)

	// SetSelection activates a selection of balloonID for the user,
	// atomically deactivating any prior active selection. The at-most-one-
	// active invariant is enforced inside the storage routine. Returns
	// ErrBalloonNotFound when balloonID does not reference a selectable balloon.
	SetSelection(ctx context.Context, userID, balloonID uuid.UUID) error
}
