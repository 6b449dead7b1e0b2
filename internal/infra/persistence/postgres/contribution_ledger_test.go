package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"tasbal/internal/domain/division"
	"tasbal/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contributionColumns() []string {
	return []string{"balloon_id", "progress", "threshold", "popped", "pop_context_type", "popped_at"}
}

func TestContributionLedger_Record_BelowThreshold(t *testing.T) {
	db, mock := newMockGorm(t)
	ledger := NewContributionLedger(db)

	balloonID := uuid.New()
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM sp_add_balloon_contribution($1, $2, $3, $4)")).
		WithArgs(balloonID, userID, int16(1), int64(1)).
		WillReturnRows(sqlmock.NewRows(contributionColumns()).
			AddRow(balloonID, int64(42), int64(100), false, int16(0), nil))

	pop, err := ledger.Record(context.Background(), balloonID, userID, division.ContributionSourceTask, 1)
	require.NoError(t, err)
	assert.Nil(t, pop)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContributionLedger_Record_Pop(t *testing.T) {
	db, mock := newMockGorm(t)
	ledger := NewContributionLedger(db)

	balloonID := uuid.New()
	userID := uuid.New()
	poppedAt := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM sp_add_balloon_contribution($1, $2, $3, $4)")).
		WithArgs(balloonID, userID, int16(1), int64(1)).
		WillReturnRows(sqlmock.NewRows(contributionColumns()).
			AddRow(balloonID, int64(100), int64(100), true, int16(1), poppedAt))

	pop, err := ledger.Record(context.Background(), balloonID, userID, division.ContributionSourceTask, 1)
	require.NoError(t, err)
	require.NotNil(t, pop)
	assert.Equal(t, balloonID, pop.BalloonID)
	assert.Equal(t, division.PopContextTask, pop.ContextType)
	assert.Equal(t, int64(100), pop.Progress)
	assert.Equal(t, int64(100), pop.Threshold)
	assert.WithinDuration(t, poppedAt, pop.PoppedAt, time.Second)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContributionLedger_Record_UnknownBalloon(t *testing.T) {
	db, mock := newMockGorm(t)
	ledger := NewContributionLedger(db)

	balloonID := uuid.New()
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM sp_add_balloon_contribution($1, $2, $3, $4)")).
		WithArgs(balloonID, userID, int16(1), int64(1)).
		WillReturnRows(sqlmock.NewRows(contributionColumns()))

	pop, err := ledger.Record(context.Background(), balloonID, userID, division.ContributionSourceTask, 1)
	require.Error(t, err)
	assert.Nil(t, pop)
	assert.ErrorIs(t, err, repository.ErrBalloonNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
