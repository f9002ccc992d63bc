package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func immediatePolicy() Policy {
	return Policy{MaxAttempts: 3}
}

func TestDoReturnsFirstSuccess(t *testing.T) {
	calls := 0
	result, err := Do(context.Background(), immediatePolicy(), func(ctx context.Context) (string, error) {
		calls++
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 1, calls)
}

func TestDoRecoversAfterFailure(t *testing.T) {
	calls := 0
	result, err := Do(context.Background(), immediatePolicy(), func(ctx context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("transient")
		}
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.Equal(t, 3, calls)
}

func TestDoExhaustsBudgetAndReturnsLastError(t *testing.T) {
	calls := 0
	lastErr := errors.New("attempt 3 failed")
	_, err := Do(context.Background(), immediatePolicy(), func(ctx context.Context) (int, error) {
		calls++
		if calls == 3 {
			return 0, lastErr
		}
		return 0, errors.New("earlier failure")
	})
	assert.Equal(t, 3, calls)
	assert.Equal(t, lastErr, err)
}

func TestDoNonRetryableStopsImmediately(t *testing.T) {
	calls := 0
	permanent := errors.New("permanent")
	p := Policy{
		MaxAttempts: 3,
		Retryable:   func(err error) bool { return !errors.Is(err, permanent) },
	}
	_, err := Do(context.Background(), p, func(ctx context.Context) (int, error) {
		calls++
		return 0, permanent
	})
	assert.Equal(t, 1, calls)
	assert.Equal(t, permanent, err)
}

func TestDoDelaysAreLinear(t *testing.T) {
	var delays []time.Duration
	p := Policy{
		MaxAttempts: 3,
		Delay: func(attempt int) time.Duration {
			delays = append(delays, time.Duration(attempt)*time.Second)
			return 0
		},
	}
	_, err := Do(context.Background(), p, func(ctx context.Context) (int, error) {
		return 0, errors.New("fail")
	})
	require.Error(t, err)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, delays)
}

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()
	assert.Equal(t, 3, p.MaxAttempts)
	assert.Equal(t, time.Second, p.Delay(1))
	assert.Equal(t, 2*time.Second, p.Delay(2))
}

func TestDoStopsWaitingOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	p := Policy{
		MaxAttempts: 3,
		Delay:       func(attempt int) time.Duration { return time.Hour },
	}
	_, err := Do(ctx, p, func(ctx context.Context) (int, error) {
		calls++
		return 0, errors.New("fail")
	})
	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, context.Canceled)
}
