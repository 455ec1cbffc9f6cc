package health

import (
	"context"
	"errors"
)

// Checker reports whether one dependency is usable
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to Checker
type CheckerFunc func(ctx context.Context) error

// CheckHealth implements Checker
func (f CheckerFunc) CheckHealth(ctx context.Context) error { return f(ctx) }

// ContextPinger is satisfied by database.PostgresClient and database.RedisClient
type ContextPinger interface {
	Ping(ctx context.Context) error
}

// Pinger is satisfied by the NSQ producer
type Pinger interface {
	Ping() error
}

// NewPingChecker checks a context-aware client such as Postgres or Redis
func NewPingChecker(client ContextPinger) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		if client == nil {
			return errors.New("client not configured")
		}
		return client.Ping(ctx)
	})
}

// NewNSQChecker checks the producer connection. A nil producer means
// notifications run in-process and the check passes.
func NewNSQChecker(producer Pinger) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		if producer == nil {
			return nil
		}
		done := make(chan error, 1)
		go func() { done <- producer.Ping() }()
		select {
		case err := <-done:
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	})
}
