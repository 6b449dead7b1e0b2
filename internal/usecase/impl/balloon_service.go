package impl

import (
	"context"

	"tasbal/internal/domain/entity"
	domainerrors "tasbal/internal/domain/errors"
	"tasbal/internal/domain/repository"
	"tasbal/internal/errors"
	"tasbal/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type balloonService struct {
	balloonRepo repository.BalloonRepository
}

// NewBalloonService creates a new balloon service instance
func NewBalloonService(balloonRepo repository.BalloonRepository) usecase.BalloonUsecase {
	return &balloonService{balloonRepo: balloonRepo}
}

// CreateBalloon persists a new User-type balloon owned by the caller.
func (s *balloonService) CreateBalloon(ctx context.Context, ownerUserID uuid.UUID, input usecase.CreateBalloonInput) (*entity.Balloon, error) {
	balloon, err := s.balloonRepo.Create(ctx, ownerUserID, repository.CreateBalloonInput{
		Title:       input.Title,
		Description: input.Description,
		ColorID:     input.ColorID,
		TagIconID:   input.TagIconID,
		IsPublic:    input.IsPublic,
	})
	if err != nil {
		return nil, err
	}

	return balloon, nil
}

// ListPublicBalloons returns active public balloons, newest first.
func (s *balloonService) ListPublicBalloons(ctx context.Context, limit, offset int) ([]*entity.Balloon, error) {
	limit, offset = clampPage(limit, offset)

	balloons, err := s.balloonRepo.FindPublic(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list public balloons")
	}

	return balloons, nil
}

// GetSelectedBalloon returns the active selection, or uuid.Nil when the user
// has none. Having no selection is a normal state, not an error.
func (s *balloonService) GetSelectedBalloon(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	balloonID, err := s.balloonRepo.FindSelected(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNoSelection) {
			return uuid.Nil, nil
		}

		return uuid.Nil, errors.Wrap(err, "failed to find balloon selection")
	}

	return balloonID, nil
}

// SetSelectedBalloon activates a selection, deactivating any prior one. The
// at-most-one-active invariant lives in the storage routine.
func (s *balloonService) SetSelectedBalloon(ctx context.Context, userID, balloonID uuid.UUID) error {
	if err := s.balloonRepo.SetSelection(ctx, userID, balloonID); err != nil {
		if errors.Is(err, repository.ErrBalloonNotFound) {
			return domainerrors.ErrBalloonNotSelectable
		}

		return errors.Wrap(err, "failed to set balloon selection")
	}

	return nil
}

// clampPage normalizes paging arguments: non-positive limits fall back to
// the default page size, oversized limits are capped, negative offsets reset.
func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
