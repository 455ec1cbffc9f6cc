package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/mrshoofer/mrshoofer/internal/pkg/circuitbreaker"
	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	nrpkg "github.com/mrshoofer/mrshoofer/internal/pkg/newrelic"
	"github.com/mrshoofer/mrshoofer/internal/pkg/retry"
)

// DefaultTimeout for a single HTTP attempt
const DefaultTimeout = 10 * time.Second

// Config describes an upstream JSON API
type Config struct {
	Name         string // used for logs and the breaker name
	BaseURL      string
	APIKeyHeader string
	APIKey       string
	Timeout      time.Duration
	Retry        retry.Config
	Breaker      circuitbreaker.Config
}

// HTTPError is returned for non-2xx responses
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error %d: %s", e.StatusCode, e.Body)
}

// Client calls an upstream JSON API with an API key header. Each call is
// retried on network errors and 5xx responses, and guarded by a breaker.
type Client struct {
	name       string
	baseURL    string
	header     string
	apiKey     string
	httpClient *nethttp.Client
	retrier    *retry.Retrier
	breaker    *circuitbreaker.CircuitBreaker
}

// NewClient creates a client; zero-valued Retry and Breaker configs get
// defaults
func NewClient(config Config, l *logger.ZapLogger) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	if config.Retry.MaxRetries == 0 && config.Retry.BaseDelay == 0 {
		config.Retry = retry.DefaultConfig()
	}
	if config.Breaker.FailureThreshold == 0 {
		config.Breaker = circuitbreaker.DefaultConfig(config.Name)
	}
	config.Breaker.IsFailure = isUpstreamFailure

	return &Client{
		name:       config.Name,
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		header:     config.APIKeyHeader,
		apiKey:     config.APIKey,
		httpClient: &nethttp.Client{Timeout: timeout},
		retrier:    retry.New(config.Retry, l),
		breaker:    circuitbreaker.New(config.Breaker, l),
	}
}

// isUpstreamFailure counts only failures that say the upstream is unhealthy
func isUpstreamFailure(err error) bool {
	if err == nil {
		return false
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= 500
	}
	return true
}

// PostJSON posts body as JSON and decodes the response into result
func (c *Client) PostJSON(ctx context.Context, endpoint string, body, result interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	return c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.retrier.Execute(ctx, func(ctx context.Context) error {
			return c.do(ctx, nethttp.MethodPost, endpoint, payload, result)
		})
	})
}

// GetJSON issues a GET and decodes the response into result
func (c *Client) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	return c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.retrier.Execute(ctx, func(ctx context.Context) error {
			return c.do(ctx, nethttp.MethodGet, endpoint, nil, result)
		})
	})
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload []byte, result interface{}) error {
	url := c.baseURL + endpoint

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return retry.Permanent(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.header != "" && c.apiKey != "" {
		req.Header.Set(c.header, c.apiKey)
	}

	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*nethttp.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		logger.Warn("Upstream request failed",
			logger.String("service", c.name),
			logger.String("method", method),
			logger.String("endpoint", endpoint),
			logger.Err(err))
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		httpErr := &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
		logger.Warn("Upstream returned error status",
			logger.String("service", c.name),
			logger.String("endpoint", endpoint),
			logger.Int("status_code", resp.StatusCode))
		if resp.StatusCode < 500 {
			return retry.Permanent(httpErr)
		}
		return httpErr
	}

	if result == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return retry.Permanent(fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}
