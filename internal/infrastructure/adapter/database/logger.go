package database

import (
	"context"
	"errors"
	"strings"
	"time"

	coreport "github.com/announcement7/balance-system-backend/internal/domain/port/core"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormDatabaseLogger bridges GORM's logger interface onto the core logger
type GormDatabaseLogger struct {
	coreLogger    coreport.Logger
	logLevel      logger.LogLevel
	slowThreshold time.Duration
}

// NewGormDatabaseLogger creates a GORM logger backed by the core logger
func NewGormDatabaseLogger(coreLogger coreport.Logger, level string) logger.Interface {
	var logLevel logger.LogLevel
	switch strings.ToLower(level) {
	case "silent":
		logLevel = logger.Silent
	case "error":
		logLevel = logger.Error
	case "warn":
		logLevel = logger.Warn
	default:
		logLevel = logger.Info
	}

	return &GormDatabaseLogger{
		coreLogger:    coreLogger,
		logLevel:      logLevel,
		slowThreshold: 200 * time.Millisecond,
	}
}

// LogMode sets the log level for the logger
func (l *GormDatabaseLogger) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	newLogger.logLevel = level
	return &newLogger
}

// Info logs informational messages
func (l *GormDatabaseLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.logLevel >= logger.Info {
		l.coreLogger.Info(msg, map[string]any{"data": data})
	}
}

// Warn logs warning messages
func (l *GormDatabaseLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.logLevel >= logger.Warn {
		l.coreLogger.Warn(msg, map[string]any{"data": data})
	}
}

// Error logs errors messages
func (l *GormDatabaseLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.logLevel >= logger.Error {
		l.coreLogger.Error(msg, map[string]any{"data": data})
	}
}

// Trace logs SQL statements with their duration, surfacing slow
// queries as warnings
func (l *GormDatabaseLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.logLevel <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	fields := map[string]any{
		"sql":        sql,
		"rows":       rows,
		"elapsed_ms": elapsed.Milliseconds(),
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.logLevel >= logger.Error:
		fields["error"] = err.Error()
		l.coreLogger.Error("Query failed", fields)
	case elapsed > l.slowThreshold && l.logLevel >= logger.Warn:
		fields["threshold_ms"] = l.slowThreshold.Milliseconds()
		l.coreLogger.Warn("Slow query", fields)
	case l.logLevel >= logger.Info:
		l.coreLogger.Debug("Query executed", fields)
	}
}
