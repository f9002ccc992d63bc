// Package retry wraps fallible remote calls with a bounded, sequential retry
// loop.
package retry

import (
	"context"
	"time"
)

// Policy controls how Do retries a failing operation.
type Policy struct {
	// MaxAttempts is the total attempt budget, including the first call.
	MaxAttempts int
	// Delay returns the wait before the next attempt, given the 1-based
	// number of the attempt that just failed. Nil means no wait.
	Delay func(attempt int) time.Duration
	// Retryable reports whether an error is worth another attempt. Nil
	// means every error is retried.
	Retryable func(err error) bool
}

// DefaultPolicy matches the call sites in this service: 3 attempts with
// linear backoff (1s, then 2s), every error retried.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		Delay: func(attempt int) time.Duration {
			return time.Duration(attempt) * time.Second
		},
	}
}

// Do runs op until it succeeds or the policy's attempt budget is exhausted.
// Attempts are strictly sequential. The last attempt's error is returned on
// exhaustion; a context cancelled during a backoff wait returns ctx.Err().
func Do[T any](ctx context.Context, p Policy, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if p.Retryable != nil && !p.Retryable(err) {
			break
		}
		if attempt == attempts {
			break
		}

		var delay time.Duration
		if p.Delay != nil {
			delay = p.Delay(attempt)
		}
		if err := wait(ctx, delay); err != nil {
			return zero, err
		}
	}
	return zero, lastErr
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
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
