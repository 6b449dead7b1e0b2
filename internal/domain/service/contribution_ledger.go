// Package service defines domain-level collaborator interfaces whose
// implementations live in the infrastructure layer.
package service

import (
	"context"

	"tasbal/internal/domain/division"
	"tasbal/internal/domain/entity"

	"github.com/google/uuid"
)

// ContributionLedger records progress against a balloon. The accumulation
// and pop-threshold algorithm lives entirely in the storage layer; this
// interface only proxies the call and reports the outcome.
type ContributionLedger interface {
	// Record adds amount progress to the balloon on behalf of the user,
	// tagged with the contribution source. When the contribution crosses
	// the balloon's threshold the storage routine records a pop and a
	// non-nil PopEvent is returned.
	Record(ctx context.Context, balloonID, userID uuid.UUID, source division.ContributionSourceType, amount int64) (*entity.PopEvent, error)
}
