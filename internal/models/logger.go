package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"
)

// dbLogger routes gorm log output to zerolog.
type dbLogger struct {
	log zerolog.Logger
}

// LogMode is ignored, the level of the underlying zerolog logger applies.
func (l dbLogger) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return l
}

func (l dbLogger) Info(_ context.Context, format string, args ...interface{}) {
	l.log.Info().Msgf(format, args...)
}

func (l dbLogger) Warn(_ context.Context, format string, args ...interface{}) {
	l.log.Warn().Msgf(format, args...)
}

func (l dbLogger) Error(_ context.Context, format string, args ...interface{}) {
	l.log.Error().Msgf(format, args...)
}

// Trace logs the statement and its duration. Queries that simply did not
// find a resource are logged at debug level like successful ones.
func (l dbLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	statement, rows := fc()

	event := l.log.Debug()
	if err != nil && !errors.Is(err, ErrResourceNotFound) {
		event = l.log.Error().Err(err)
	}

	event.
		Str("statement", statement).
		Int64("rows", rows).
		Dur("elapsed", time.Since(begin)).
		Msg("database")
}
