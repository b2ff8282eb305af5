package actions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/musicmindsdev/music-minds-admin-sub000/internal/client"
)

func TestNextDelayBackoff(t *testing.T) {
	p := RetryPolicy{MaxAttempts: 5, InitialDelay: 100 * time.Millisecond, MaxDelay: time.Second, BackoffFactor: 2}

	assert.Equal(t, 100*time.Millisecond, p.NextDelay(1))
	assert.Equal(t, 200*time.Millisecond, p.NextDelay(2))
	assert.Equal(t, 400*time.Millisecond, p.NextDelay(3))
	assert.Equal(t, time.Second, p.NextDelay(10), "clamped to MaxDelay")
	assert.Equal(t, 100*time.Millisecond, p.NextDelay(0), "attempt floor is 1")
}

func TestNextDelayZeroValueDefaults(t *testing.T) {
	var p RetryPolicy
	assert.Positive(t, p.NextDelay(1))
	assert.Positive(t, p.NextDelay(3))
}

func TestSleepCancellable(t *testing.T) {
	p := RetryPolicy{InitialDelay: time.Minute}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Sleep(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRetryableClassification(t *testing.T) {
	assert.False(t, retryable(client.ErrUnauthorized))
	assert.False(t, retryable(&client.APIError{StatusCode: 404}))
	assert.False(t, retryable(&client.APIError{StatusCode: 422}))
	assert.True(t, retryable(&client.APIError{StatusCode: 500}))
	assert.True(t, retryable(&client.APIError{StatusCode: 429}))
	assert.True(t, retryable(errors.New("connection reset")))
}
