package pathedit

import (
	"context"
	"time"
)

// Delay hands value back after d, or returns ctx.Err() if ctx ends first.
func Delay[T any](ctx context.Context, value T, d time.Duration) (T, error) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return value, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
