package newrelic

import (
	"context"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// FromContext extracts the transaction started by the HTTP middleware
func FromContext(ctx context.Context) *newrelic.Transaction {
	return newrelic.FromContext(ctx)
}

// AddAttribute is a nil-safe txn.AddAttribute
func AddAttribute(ctx context.Context, key string, value interface{}) {
	if txn := FromContext(ctx); txn != nil {
		txn.AddAttribute(key, value)
	}
}

// NoticeError is a nil-safe txn.NoticeError
func NoticeError(ctx context.Context, err error) {
	if txn := FromContext(ctx); txn != nil && err != nil {
		txn.NoticeError(err)
	}
}

// WithSegment runs fn inside a named segment of the request transaction
func WithSegment(ctx context.Context, name string, fn func() error) error {
	if txn := FromContext(ctx); txn != nil {
		defer txn.StartSegment(name).End()
	}
	return fn()
}

// TraceUseCase runs a use case method inside a segment and returns its value
func TraceUseCase[T any](ctx context.Context, name string, fn func(context.Context) (T, error)) (T, error) {
	if txn := FromContext(ctx); txn != nil {
		defer txn.StartSegment(name).End()
	}
	return fn(ctx)
}
