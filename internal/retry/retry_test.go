package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusErr struct {
	code int
	msg  string
}

func (e *statusErr) Error() string       { return e.msg }
func (e *statusErr) HTTPStatusCode() int { return e.code }

func TestDoSucceedsOnThirdAttempt(t *testing.T) {
	cfg := Config{MaxAttempts: 3, BaseDelay: 10 * time.Millisecond}

	var attempts int
	var notices []time.Duration
	onRetry := func(attempt, max int, delay time.Duration) {
		assert.Equal(t, 3, max)
		notices = append(notices, delay)
	}

	err := Do(context.Background(), cfg, onRetry, func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	require.Len(t, notices, 2)
	assert.Equal(t, 10*time.Millisecond, notices[0])
	assert.Equal(t, 20*time.Millisecond, notices[1])
}

func TestDoExhaustsAttempts(t *testing.T) {
	cfg := Config{MaxAttempts: 3, BaseDelay: time.Millisecond}

	var attempts int
	lastErr := errors.New("still down")
	err := Do(context.Background(), cfg, nil, func(ctx context.Context) error {
		attempts++
		return lastErr
	})

	require.ErrorIs(t, err, lastErr)
	assert.Equal(t, 3, attempts)
}

func TestDoDoesNotRetryClientError(t *testing.T) {
	cfg := Config{MaxAttempts: 5, BaseDelay: time.Millisecond}

	var attempts int
	clientErr := &statusErr{code: 403, msg: "forbidden"}
	err := Do(context.Background(), cfg, nil, func(ctx context.Context) error {
		attempts++
		return clientErr
	})

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestDoRetriesServerError(t *testing.T) {
	cfg := Config{MaxAttempts: 2, BaseDelay: time.Millisecond}

	var attempts int
	err := Do(context.Background(), cfg, nil, func(ctx context.Context) error {
		attempts++
		return &statusErr{code: 503, msg: "unavailable"}
	})

	require.Error(t, err)
	assert.Equal(t, 2, attempts)
}

func TestDoStopsOnContextCancel(t *testing.T) {
	cfg := Config{MaxAttempts: 3, BaseDelay: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	var attempts int
	err := Do(ctx, cfg, nil, func(ctx context.Context) error {
		attempts++
		return errors.New("transient")
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}

func TestIsClientError(t *testing.T) {
	wrapped := errors.Join(errors.New("request failed"), &statusErr{code: 422, msg: "bad payload"})
	assert.True(t, IsClientError(wrapped))
	assert.False(t, IsClientError(&statusErr{code: 500, msg: "boom"}))
	assert.False(t, IsClientError(errors.New("plain")))
}
