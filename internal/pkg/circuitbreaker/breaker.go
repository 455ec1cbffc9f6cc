package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
)

// ErrOpen is returned without calling through while the breaker is open
var ErrOpen = errors.New("circuit breaker is open")

// State of a breaker
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// Config holds circuit breaker configuration
type Config struct {
	Name             string
	FailureThreshold int           // consecutive failures that open the breaker
	OpenTimeout      time.Duration // how long to stay open before probing
	// IsFailure decides which errors count. Nil counts every non-nil error.
	IsFailure func(error) bool
}

// DefaultConfig opens after five straight failures and probes after 30s
func DefaultConfig(name string) Config {
	return Config{Name: name, FailureThreshold: 5, OpenTimeout: 30 * time.Second}
}

// CircuitBreaker stops calling a failing dependency for a while. In the
// half-open state exactly one probe call is let through.
type CircuitBreaker struct {
	config Config
	logger *logger.ZapLogger
	now    func() time.Time

	mu       sync.Mutex
	state    State
	failures int
	openedAt time.Time
	probing  bool
}

// New creates a closed breaker; a nil logger discards state changes
func New(config Config, l *logger.ZapLogger) *CircuitBreaker {
	if l == nil {
		l = logger.NewNopLogger()
	}
	if config.FailureThreshold <= 0 {
		config.FailureThreshold = 1
	}
	return &CircuitBreaker{config: config, logger: l, now: time.Now}
}

// Execute calls fn unless the breaker is open
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := cb.before(); err != nil {
		return err
	}
	err := fn(ctx)
	cb.after(err)
	return err
}

// State returns the current state, moving an expired open breaker to half-open
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.refresh()
	return cb.state
}

func (cb *CircuitBreaker) refresh() {
	if cb.state == StateOpen && cb.now().Sub(cb.openedAt) >= cb.config.OpenTimeout {
		cb.setState(StateHalfOpen)
	}
}

func (cb *CircuitBreaker) before() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.refresh()
	switch cb.state {
	case StateOpen:
		return ErrOpen
	case StateHalfOpen:
		if cb.probing {
			return ErrOpen
		}
		cb.probing = true
	}
	return nil
}

func (cb *CircuitBreaker) after(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	failed := err != nil
	if cb.config.IsFailure != nil {
		failed = cb.config.IsFailure(err)
	}

	if cb.state == StateHalfOpen {
		cb.probing = false
		if failed {
			cb.trip()
		} else {
			cb.failures = 0
			cb.setState(StateClosed)
		}
		return
	}

	if !failed {
		cb.failures = 0
		return
	}
	cb.failures++
	if cb.failures >= cb.config.FailureThreshold {
		cb.trip()
	}
}

func (cb *CircuitBreaker) trip() {
	cb.openedAt = cb.now()
	cb.setState(StateOpen)
}

func (cb *CircuitBreaker) setState(state State) {
	if cb.state == state {
		return
	}
	prev := cb.state
	cb.state = state
	cb.logger.Info("Circuit breaker state changed",
		logger.String("name", cb.config.Name),
		logger.String("from", prev.String()),
		logger.String("to", state.String()),
		logger.Int("consecutive_failures", cb.failures))
}
