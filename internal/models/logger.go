package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// Queries slower than this are logged at warn level.
const slowQueryThreshold = 200 * time.Millisecond

// dbLogger routes gorm log output through zerolog.
type dbLogger struct {
	log zerolog.Logger
}

// LogMode is a no-op, levels are controlled through zerolog.
func (l *dbLogger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *dbLogger) Info(_ context.Context, msg string, args ...interface{}) {
	l.log.Info().Msgf(msg, args...)
}

func (l *dbLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	l.log.Warn().Msgf(msg, args...)
}

func (l *dbLogger) Error(_ context.Context, msg string, args ...interface{}) {
	l.log.Error().Msgf(msg, args...)
}

func (l *dbLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	event := l.log.Debug()
	switch {
	// Not-found is reported to the caller, not an operational problem
	case err != nil && !errors.Is(err, ErrResourceNotFound):
		event = l.log.Error().Err(err)
	case elapsed > slowQueryThreshold:
		event = l.log.Warn()
	}

	event.Str("sql", sql).Int64("rows", rows).Dur("duration", elapsed).Msg("database query")
}
