package logger

import (
	"github.com/announcement7/balance-system-backend/internal/domain/port/core"
)

// NoopLogger discards all log output. Used in tests and benchmarks
// where log assertions are not the point.
type NoopLogger struct{}

// NewNoopLogger creates a logger that does nothing
func NewNoopLogger() core.Logger {
	return &NoopLogger{}
}

// Debug does nothing
func (l *NoopLogger) Debug(message string, fields map[string]any) {}

// Info does nothing
func (l *NoopLogger) Info(message string, fields map[string]any) {}

// Warn does nothing
func (l *NoopLogger) Warn(message string, fields map[string]any) {}

// Error does nothing
func (l *NoopLogger) Error(message string, fields map[string]any) {}

// Flush does nothing
func (l *NoopLogger) Flush() error { return nil }
