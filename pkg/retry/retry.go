// Package retry provides a bounded retry policy with pluggable backoff,
// usable around any network call.
package retry

import (
	"context"
	"time"
)

// Policy controls how Do re-attempts a failing call.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int

	// Backoff returns the delay to wait after the given failed attempt
	// (1-based). Nil means ExponentialBackoff.
	Backoff func(attempt int) time.Duration

	// Retryable reports whether the error is worth another attempt.
	// Nil means every error is retryable.
	Retryable func(err error) bool
}

// ExponentialBackoff doubles a one-second base per attempt: 2s, 4s, 8s...
func ExponentialBackoff(attempt int) time.Duration {
	return time.Second << attempt
}

// Do runs fn up to p.MaxAttempts times, waiting p.Backoff between failed
// attempts. It returns the first successful result, or the last error once
// attempts are exhausted, the error is not retryable, or ctx is done.
func Do[T any](ctx context.Context, p Policy, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	backoff := p.Backoff
	if backoff == nil {
		backoff = ExponentialBackoff
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if p.Retryable != nil && !p.Retryable(err) {
			return zero, err
		}
		if attempt == attempts {
			break
		}

		select {
		case <-time.After(backoff(attempt)):
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}

	return zero, lastErr
}
