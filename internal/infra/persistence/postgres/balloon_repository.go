package postgres

import (
	"context"

	"tasbal/internal/domain/division"
	"tasbal/internal/domain/entity"
	domainerrors "tasbal/internal/domain/errors"
	"tasbal/internal/domain/repository"
	"tasbal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// balloonRepository implements the domain's BalloonRepository against the
// balloon routines.
type balloonRepository struct {
	db *gorm.DB
}

// NewBalloonRepository is the constructor for balloonRepository.
func NewBalloonRepository(db *gorm.DB) repository.BalloonRepository {
	return &balloonRepository{db: db}
}

// Create persists a new user-owned balloon.
func (repo *balloonRepository) Create(ctx context.Context, ownerUserID uuid.UUID, input repository.CreateBalloonInput) (*entity.Balloon, error) {
	var row model.BalloonRow
	result := repo.db.WithContext(ctx).
		Raw(routineCall(spCreateBalloon, 6), ownerUserID, input.Title, nullIfEmpty(input.Description), input.ColorID, input.TagIconID, input.IsPublic).
		Scan(&row)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return nil, repository.ErrBalloonNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create balloon")
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.NewDatabaseExecuteError(gorm.ErrRecordNotFound, "balloon routine returned no row")
	}

	return toBalloonEntity(&row), nil
}

// FindPublic retrieves active public balloons, newest first.
func (repo *balloonRepository) FindPublic(ctx context.Context, limit, offset int) ([]*entity.Balloon, error) {
	var rows []model.BalloonRow
	result := repo.db.WithContext(ctx).
		Raw(routineCall(spGetPublicBalloons, 2), limit, offset).
		Scan(&rows)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to list public balloons")
	}

	balloons := make([]*entity.Balloon, 0, len(rows))
	for i := range rows {
		balloons = append(balloons, toBalloonEntity(&rows[i]))
	}

	return balloons, nil
}

// FindSelected returns the ID of the user's active selection.
func (repo *balloonRepository) FindSelected(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	var row model.SelectionRow
	result := repo.db.WithContext(ctx).
		Raw(routineCall(spGetBalloonSelection, 1), userID).
		Scan(&row)
	if result.Error != nil {
		return uuid.Nil, errors.Wrap(result.Error, "failed to find balloon selection")
	}
	if result.RowsAffected == 0 {
		return uuid.Nil, repository.ErrNoSelection
	}

	return row.BalloonID, nil
}

// SetSelection activates a selection for the user. The routine deactivates
// any prior selection in the same statement, keeping at most one active per
// user, and yields no row when the balloon is unknown or inactive.
func (repo *balloonRepository) SetSelection(ctx context.Context, userID, balloonID uuid.UUID) error {
	var row model.SelectionRow
	result := repo.db.WithContext(ctx).
		Raw(routineCall(spSetBalloonSelection, 2), userID, balloonID).
		Scan(&row)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrBalloonNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set balloon selection")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBalloonNotFound
	}

	return nil
}

// toBalloonEntity maps a routine result row back to a pure domain entity.
func toBalloonEntity(row *model.BalloonRow) *entity.Balloon {
	balloonType, ok := division.BalloonTypeFromValue(row.BalloonType)
	if !ok {
		balloonType = division.BalloonTypeUser
	}
	displayGroup, ok := division.BalloonDisplayGroupFromValue(row.DisplayGroup)
	if !ok {
		displayGroup = division.BalloonDisplayGroupDrifting
	}
	visibility, ok := division.BalloonVisibilityFromValue(row.Visibility)
	if !ok {
		visibility = division.BalloonVisibilityPrivate
	}

	var description, countryCode string
	if row.Description != nil {
		description = *row.Description
	}
	if row.CountryCode != nil {
		countryCode = *row.CountryCode
	}

	return &entity.Balloon{
		ID:           row.ID,
		BalloonType:  balloonType,
		DisplayGroup: displayGroup,
		Visibility:   visibility,
		OwnerUserID:  row.OwnerUserID,
		Title:        row.Title,
		Description:  description,
		ColorID:      row.ColorID,
		TagIconID:    row.TagIconID,
		CountryCode:  countryCode,
		IsActive:     row.IsActive,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
