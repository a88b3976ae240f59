package service

import (
	"context"
	"time"
)

// processingWait pauses for the configured simulated processing delay. It
// respects context cancellation so a dropped request does not hold a worker.
// A zero or negative delay returns immediately, which tests rely on.
func processingWait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
