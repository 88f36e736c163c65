package syncdeals

import (
	"context"
	"fmt"
	"time"
)

// retryLinear calls fn up to attempts times with linear backoff between tries
// (delay, 2*delay, ...). It returns the last error when every attempt fails,
// or the context error as soon as the context is done.
func retryLinear(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * delay):
		}
	}
	return fmt.Errorf("failed after %d attempts: %w", attempts, lastErr)
}
