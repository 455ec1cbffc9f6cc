package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
)

// Func is an operation that may be retried
type Func func(ctx context.Context) error

// Config holds retry configuration
type Config struct {
	MaxRetries int           // retries after the first attempt
	BaseDelay  time.Duration // delay before the first retry
	MaxDelay   time.Duration
	Multiplier float64
	Jitter     bool
	// Retryable reports whether err is worth another attempt. Nil retries
	// everything except Permanent errors.
	Retryable func(error) bool
}

// DefaultConfig suits short outbound calls made from a background dispatch
func DefaultConfig() Config {
	return Config{
		MaxRetries: 2,
		BaseDelay:  200 * time.Millisecond,
		MaxDelay:   5 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
	}
}

type permanentError struct{ err error }

func (p *permanentError) Error() string { return p.err.Error() }
func (p *permanentError) Unwrap() error { return p.err }

// Permanent marks err as not retryable
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent reports whether err was marked with Permanent
func IsPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}

// Retrier runs operations with exponential backoff
type Retrier struct {
	config Config
	logger *logger.ZapLogger
}

// New creates a retrier; a nil logger discards retry logs
func New(config Config, l *logger.ZapLogger) *Retrier {
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &Retrier{config: config, logger: l}
}

func (r *Retrier) retryable(err error) bool {
	if IsPermanent(err) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if r.config.Retryable != nil {
		return r.config.Retryable(err)
	}
	return true
}

// Execute runs fn until it succeeds, fails permanently, the retries run
// out or ctx is done.
func (r *Retrier) Execute(ctx context.Context, fn Func) error {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(ctx)
		if err == nil {
			if attempt > 0 {
				r.logger.Info("Operation succeeded after retries", logger.Int("attempts", attempt+1))
			}
			return nil
		}
		lastErr = err

		if !r.retryable(err) {
			return err
		}
		if attempt == r.config.MaxRetries {
			break
		}

		delay := r.delay(attempt)
		r.logger.Debug("Operation failed, retrying",
			logger.Err(err),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return fmt.Errorf("retry limit exceeded after %d attempts: %w", r.config.MaxRetries+1, lastErr)
}

func (r *Retrier) delay(attempt int) time.Duration {
	multiplier := r.config.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}
	delay := float64(r.config.BaseDelay) * math.Pow(multiplier, float64(attempt))
	if r.config.MaxDelay > 0 && delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}
	if r.config.Jitter {
		delay += delay * 0.1 * rand.Float64()
	}
	return time.Duration(delay)
}
