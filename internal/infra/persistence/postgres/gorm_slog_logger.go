package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// gormSlogLogger sends GORM output to slog. Queries are logged with the request-scoped
// logger when the context carries one, so SQL lines share the request id and caller.
type gormSlogLogger struct {
	base          *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(base *slog.Logger, debug bool, slowThreshold time.Duration) logger.Interface {
	level := logger.Warn
	if debug {
		level = logger.Info
	}

	return &gormSlogLogger{base: base, level: level, slowThreshold: slowThreshold}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *gormSlogLogger) message(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	log := l.loggerFor(ctx)
	if l.level < threshold || log == nil {
		return
	}

	log.LogAttrs(ctx, level, "GORM "+level.String(), slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed queries, then slow ones, then (at Info) every query.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	log := l.loggerFor(ctx)
	if log == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	query := func(extra ...slog.Attr) []slog.Attr {
		sql, rows := sqlAndRowsFn()

		return append([]slog.Attr{
			slog.Duration("elapsed", elapsed),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
		}, extra...)
	}

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		log.LogAttrs(ctx, slog.LevelError, "GORM query failed", query(slog.String("error", err.Error()))...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		log.LogAttrs(ctx, slog.LevelWarn, "GORM slow query", query(slog.Duration("slowThreshold", l.slowThreshold))...)
	case l.level >= logger.Info:
		log.LogAttrs(ctx, slog.LevelInfo, "GORM query", query()...)
	}
}

func (l *gormSlogLogger) loggerFor(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.base
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}
