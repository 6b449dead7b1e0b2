package usecase

import (
	"context"

	"tasbal/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBalloonInput carries the fields of a user-created balloon.
type CreateBalloonInput struct {
	Title       string
	Description string
	ColorID     *int16
	TagIconID   *int16
	IsPublic    bool
}

// BalloonUsecase defines the use cases around balloons and the per-user
// selection of the balloon receiving task contributions.
type BalloonUsecase interface {
	// CreateBalloon persists a new User-type balloon owned by the caller.
	CreateBalloon(ctx context.Context, ownerUserID uuid.UUID, input CreateBalloonInput) (*entity.Balloon, error)

	// ListPublicBalloons returns active public balloons, newest first.
	ListPublicBalloons(ctx context.Context, limit, offset int) ([]*entity.Balloon, error)

	// GetSelectedBalloon returns the ID of the user's active selection, or
	// uuid.Nil when nothing is selected.
	GetSelectedBalloon(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)

	// SetSelectedBalloon selects a balloon, deactivating any prior active
	// selection. Referencing an unknown or inactive balloon yields a
	// not-found error.
	SetSelectedBalloon(ctx context.Context, userID, balloonID uuid.UUID) error
}
