package newrelic

import (
	"context"
	"net/http"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// InstrumentHTTPRequest records an outgoing call as an external segment
func InstrumentHTTPRequest(ctx context.Context, req *http.Request, do func() (*http.Response, error)) (*http.Response, error) {
	txn := FromContext(ctx)
	if txn == nil {
		return do()
	}

	segment := newrelic.StartExternalSegment(txn, req)
	defer segment.End()

	resp, err := do()
	if resp != nil {
		segment.Response = resp
	}
	return resp, err
}

// WithExternalSegment records a non-HTTP external call, such as an SDK request
func WithExternalSegment(ctx context.Context, library, procedure, url string, fn func() error) error {
	txn := FromContext(ctx)
	if txn == nil {
		return fn()
	}

	segment := &newrelic.ExternalSegment{
		StartTime: txn.StartSegmentNow(),
		URL:       url,
		Procedure: procedure,
		Library:   library,
	}
	defer segment.End()

	err := fn()
	if err != nil {
		txn.NoticeError(err)
	}
	return err
}
