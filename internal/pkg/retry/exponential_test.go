package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fastConfig() Config {
	return Config{MaxRetries: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, Multiplier: 2}
}

func TestRetrier_Execute(t *testing.T) {
	tests := []struct {
		name          string
		failures      int
		fail          error
		expectCalls   int
		expectErr     bool
		expectErrIs   error
		expectLimited bool
	}{
		{name: "Succeeds first time", failures: 0, expectCalls: 1},
		{name: "Succeeds after two failures", failures: 2, fail: errors.New("timeout"), expectCalls: 3},
		{name: "Gives up after max retries", failures: 10, fail: errors.New("timeout"), expectCalls: 4, expectErr: true, expectLimited: true},
		{name: "Permanent error stops immediately", failures: 10, fail: Permanent(errors.New("bad request")), expectCalls: 1, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			r := New(fastConfig(), nil)

			err := r.Execute(context.Background(), func(ctx context.Context) error {
				calls++
				if calls <= tt.failures {
					return tt.fail
				}
				return nil
			})

			assert.Equal(t, tt.expectCalls, calls)
			if !tt.expectErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			if tt.expectLimited {
				assert.Contains(t, err.Error(), "retry limit exceeded after 4 attempts")
			} else {
				assert.True(t, IsPermanent(err))
			}
		})
	}
}

func TestRetrier_CustomRetryable(t *testing.T) {
	r := New(Config{MaxRetries: 5, BaseDelay: time.Millisecond, Retryable: func(err error) bool { return false }}, nil)

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return errors.New("nope")
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetrier_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := New(fastConfig(), nil).Execute(ctx, func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}

func TestRetrier_DelayIsCapped(t *testing.T) {
	r := New(Config{BaseDelay: time.Second, MaxDelay: 2 * time.Second, Multiplier: 10}, nil)
	assert.Equal(t, time.Second, r.delay(0))
	assert.Equal(t, 2*time.Second, r.delay(3))
}
