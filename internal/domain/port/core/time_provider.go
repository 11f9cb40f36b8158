package core

import (
	"context"
	"time"
)

// TimeProvider abstracts time operations so usecases and tests share
// one clock
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	Sleep(d time.Duration)
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
