package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"tasbal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCaptureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewJSONHandler(&buf, nil)), &buf
}

func TestNewGormSlogLogger_SlowThresholdFromConfig(t *testing.T) {
	base, _ := newCaptureLogger()

	cfg := &config.Config{}
	cfg.Env.Log.SlowQuery = 50 * time.Millisecond

	l, ok := newGormSlogLogger(base, cfg).(*routineQueryLogger)
	require.True(t, ok)
	assert.Equal(t, 50*time.Millisecond, l.slowThreshold)
	assert.Equal(t, logger.Warn, l.level)
}

func TestNewGormSlogLogger_DefaultThreshold(t *testing.T) {
	base, _ := newCaptureLogger()

	cfg := &config.Config{}
	cfg.Env.Debug = true

	l, ok := newGormSlogLogger(base, cfg).(*routineQueryLogger)
	require.True(t, ok)
	assert.Equal(t, defaultSlowRoutineThreshold, l.slowThreshold)
	assert.Equal(t, logger.Info, l.level)
}

func TestRoutineQueryLogger_LogsSlowCall(t *testing.T) {
	base, buf := newCaptureLogger()

	cfg := &config.Config{}
	cfg.Env.Log.SlowQuery = 10 * time.Millisecond
	l := newGormSlogLogger(base, cfg)

	begin := time.Now().Add(-time.Second)
	l.Trace(context.Background(), begin, func() (string, int64) {
		return "SELECT * FROM sp_get_task_by_id($1, $2)", 1
	}, nil)

	assert.Contains(t, buf.String(), "slow routine call")
	assert.Contains(t, buf.String(), "sp_get_task_by_id")
}

func TestRoutineQueryLogger_SkipsRecordNotFound(t *testing.T) {
	base, buf := newCaptureLogger()

	l := newGormSlogLogger(base, &config.Config{})

	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM sp_get_user_by_id($1)", 0
	}, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}
