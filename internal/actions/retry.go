package actions

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/musicmindsdev/music-minds-admin-sub000/internal/client"
)

// RetryPolicy defines exponential backoff parameters for transient action
// failures.
type RetryPolicy struct {
	MaxAttempts   int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// DefaultRetryPolicy retries twice with short backoff; an admin clicking a
// button should not wait long for a verdict.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:   3,
		InitialDelay:  200 * time.Millisecond,
		MaxDelay:      2 * time.Second,
		BackoffFactor: 2,
	}
}

// NextDelay returns the delay before a given attempt (1-based), clamped.
func (r RetryPolicy) NextDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	initial := r.InitialDelay
	if initial <= 0 {
		initial = 200 * time.Millisecond
	}
	factor := r.BackoffFactor
	if factor <= 0 {
		factor = 2
	}

	d := time.Duration(float64(initial) * math.Pow(factor, float64(attempt-1)))
	if r.MaxDelay > 0 && d > r.MaxDelay {
		d = r.MaxDelay
	}
	if d <= 0 {
		d = initial
	}
	return d
}

// Sleep waits out the backoff for an attempt, returning early on ctx cancel.
func (r RetryPolicy) Sleep(ctx context.Context, attempt int) error {
	timer := time.NewTimer(r.NextDelay(attempt))
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// retryable reports whether an action failure may succeed on a second try.
// Auth expiry and other client errors never will; server errors, throttling
// and transport failures might.
func retryable(err error) bool {
	if errors.Is(err, client.ErrUnauthorized) {
		return false
	}
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}
	return true
}
