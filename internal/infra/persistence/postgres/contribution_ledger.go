package postgres

import (
	"context"
	"time"

	"tasbal/internal/domain/division"
	"tasbal/internal/domain/entity"
	domainerrors "tasbal/internal/domain/errors"
	"tasbal/internal/domain/repository"
	"tasbal/internal/domain/service"
	"tasbal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// contributionLedger implements the domain's ContributionLedger against
// sp_add_balloon_contribution. Progress accounting and the pop threshold
// comparison both live inside the routine; the ledger only reports what
// happened.
type contributionLedger struct {
	db *gorm.DB
}

// NewContributionLedger is the constructor for contributionLedger.
func NewContributionLedger(db *gorm.DB) service.ContributionLedger {
	return &contributionLedger{db: db}
}

// Record appends a contribution and returns a pop event when this
// contribution crossed the balloon's threshold, nil otherwise.
func (l *contributionLedger) Record(ctx context.Context, balloonID, userID uuid.UUID, source division.ContributionSourceType, amount int64) (*entity.PopEvent, error) {
	var row model.ContributionRow
	result := l.db.WithContext(ctx).
		Raw(routineCall(spAddBalloonContribution, 4), balloonID, userID, source.Value(), amount).
		Scan(&row)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return nil, repository.ErrBalloonNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to record contribution")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrBalloonNotFound
	}

	if !row.Popped {
		return nil, nil
	}

	contextType, ok := division.PopContextTypeFromValue(row.PopContextType)
	if !ok {
		contextType = division.PopContextOther
	}
	poppedAt := time.Now()
	if row.PoppedAt != nil {
		poppedAt = *row.PoppedAt
	}

	return &entity.PopEvent{
		BalloonID:   row.BalloonID,
		ContextType: contextType,
		Progress:    row.Progress,
		Threshold:   row.Threshold,
		PoppedAt:    poppedAt,
	}, nil
}
