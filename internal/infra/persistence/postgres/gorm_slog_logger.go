package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tasbal/config"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// defaultSlowRoutineThreshold applies when env.log.slowQuery is unset. The
// task and balloon routines are single-row lookups and updates, so anything
// past this is worth a warning.
const defaultSlowRoutineThreshold = 200 * time.Millisecond

// routineQueryLogger bridges GORM's logger interface onto slog so routine
// calls land in the same structured stream as the rest of the service. The
// logged SQL is the `SELECT * FROM sp_...` text, which names the routine and
// makes slow-query warnings attributable without extra context.
type routineQueryLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
	skipNotFound  bool
}

// newGormSlogLogger builds the GORM logger from config: debug mode raises
// the level to Info so every routine call is traced, and env.log.slowQuery
// overrides the slow-call threshold.
func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	slowThreshold := defaultSlowRoutineThreshold
	if cfg != nil {
		if cfg.Env.Debug {
			level = logger.Info
		}
		if cfg.Env.Log.SlowQuery > 0 {
			slowThreshold = cfg.Env.Log.SlowQuery
		}
	}

	return &routineQueryLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: slowThreshold,
		skipNotFound:  true,
	}
}

func (l *routineQueryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *routineQueryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *routineQueryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *routineQueryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *routineQueryLogger) printf(ctx context.Context, gormLevel logger.LogLevel, slogLevel slog.Level, msg string, args ...any) {
	if l.logger == nil || l.level < gormLevel {
		return
	}

	l.logger.LogAttrs(ctx, slogLevel, "GORM message",
		slog.String("message", fmt.Sprintf(msg, args...)),
	)
}

// Trace classifies a finished routine call as failed, slow, or (in debug
// mode) ordinary, and logs it once at the matching level.
func (l *routineQueryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case l.shouldLogError(err):
		sql, rows := sqlAndRowsFn()
		l.logger.LogAttrs(ctx, slog.LevelError, "routine call failed",
			slog.Duration("elapsed", elapsed),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
			slog.String("error", err.Error()),
		)
	case l.shouldLogSlow(elapsed):
		sql, rows := sqlAndRowsFn()
		l.logger.LogAttrs(ctx, slog.LevelWarn, "slow routine call",
			slog.Duration("elapsed", elapsed),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
			slog.Duration("slowThreshold", l.slowThreshold),
		)
	case l.level >= logger.Info:
		sql, rows := sqlAndRowsFn()
		l.logger.LogAttrs(ctx, slog.LevelInfo, "routine call",
			slog.Duration("elapsed", elapsed),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
		)
	}
}

func (l *routineQueryLogger) shouldLogError(err error) bool {
	if err == nil || l.level < logger.Error {
		return false
	}
	if l.skipNotFound && errors.Is(err, gorm.ErrRecordNotFound) {
		// Absence is an expected outcome of the lookup routines and is
		// already mapped to sentinel errors by the repositories.
		return false
	}

	return true
}

func (l *routineQueryLogger) shouldLogSlow(elapsed time.Duration) bool {
	return l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn
}
