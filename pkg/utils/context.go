package utils

import (
	"context"
	"time"
)

// WithOptionalTimeout - context.WithTimeout, но при d <= 0 таймаут не ставится.
func WithOptionalTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
