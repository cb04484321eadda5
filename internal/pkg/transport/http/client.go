// Package http builds HTTP clients with transparent retries on transient
// failures, backed by hashicorp/go-retryablehttp. Callers tune timeouts and
// retry pacing through functional options.
package http

import (
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

type config struct {
	timeout      time.Duration
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	retryMax     int
}

// Option adjusts the client configuration built by NewClient.
type Option func(*config)

// WithTimeout bounds the duration of a single request attempt. Default 5s.
func WithTimeout(d time.Duration) Option {
	return func(c *config) { c.timeout = d }
}

// WithRetryWaitMin sets the smallest pause between retry attempts. Default 1s.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) { c.retryWaitMin = d }
}

// WithRetryWaitMax caps the pause between retry attempts. Default 5s.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) { c.retryWaitMax = d }
}

// WithRetryMax sets how many times a failed request is retried. Default 2.
func WithRetryMax(n int) Option {
	return func(c *config) { c.retryMax = n }
}

// NewClient returns a retrying HTTP client configured with the given options.
// The client's internal logger is disabled so request noise does not bypass
// the application logger.
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax

	return client
}
