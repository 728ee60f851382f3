package httputil

import (
	"context"
	"errors"
	"time"
)

// Defaults used by the crates.io client, which is the only caller that
// goes through [RetryWithBackoff]. Three attempts keeps a flaky registry
// from failing an add without stalling the command for long.
const (
	defaultAttempts  = 3
	defaultBaseDelay = time.Second
)

// RetryableError marks an error as transient. The registry client wraps
// connection failures and 5xx responses with it so [Retry] tries again;
// anything else (404s, decode errors) fails on the first attempt.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retry runs fn until it succeeds, a non-retryable error occurs, ctx is
// cancelled, or attempts are exhausted. The wait between attempts starts
// at delay and doubles each time. The error from the final attempt is
// returned; cancellation during a wait returns ctx.Err().
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		var re *RetryableError
		if !errors.As(err, &re) || attempt == attempts {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
}

// RetryWithBackoff runs fn with the default registry settings: three
// attempts with a one second wait before the first retry.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return Retry(ctx, defaultAttempts, defaultBaseDelay, fn)
}
