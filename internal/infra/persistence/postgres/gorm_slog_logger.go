package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"advisor/config"
	deliverycontext "advisor/internal/delivery/context"
	"advisor/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

// newGormSlogLogger routes GORM output through slog. Records use the request-scoped logger when the
// query context carries one, so SQL lines share the request's session_id.
func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	l := &gormSlogLogger{
		logger:        baseLogger,
		level:         logger.Warn,
		slowThreshold: defaultGormSlowThreshold,
	}
	if cfg == nil {
		return l
	}

	if cfg.Env.Debug {
		l.level = logger.Info
	}
	if cfg.Database.SlowQueryThreshold > 0 {
		l.slowThreshold = cfg.Database.SlowQueryThreshold
	}

	return l
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.logger == nil || l.level < threshold {
		return
	}

	l.log(ctx).LogAttrs(ctx, level, "GORM message", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs one statement. Missing rows are normal lookups and stay silent. Unique violations are
// expected when two submits race for the same question, so they are reported as warnings.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return
	case err != nil && isUniqueConstraintViolation(err) && l.level >= logger.Warn:
		l.trace(ctx, slog.LevelWarn, "GORM constraint violation", sqlAndRowsFn, elapsed, slog.String("error", err.Error()))
	case err != nil && l.level >= logger.Error:
		l.trace(ctx, slog.LevelError, "GORM query failed", sqlAndRowsFn, elapsed, slog.String("error", err.Error()))
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		l.trace(ctx, slog.LevelWarn, "GORM slow query", sqlAndRowsFn, elapsed, slog.Duration("slow_threshold", l.slowThreshold))
	case l.level >= logger.Info:
		l.trace(ctx, slog.LevelDebug, "GORM query", sqlAndRowsFn, elapsed)
	}
}

func (l *gormSlogLogger) trace(
	ctx context.Context,
	level slog.Level,
	msg string,
	sqlAndRowsFn func() (string, int64),
	elapsed time.Duration,
	extra ...slog.Attr,
) {
	sql, rows := sqlAndRowsFn()

	attrs := append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}, extra...)

	l.log(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *gormSlogLogger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}
