// Package retry wraps avast/retry-go behind a small interface so callers can
// depend on retry behavior without binding to the library directly. Backoff is
// exponential, bounded by a configurable maximum delay, and every execution
// honors context cancellation.
package retry

import (
	"context"
	"time"

	retrygo "github.com/avast/retry-go/v4"
)

// Retry executes fallible operations with automatic re-attempts.
type Retry interface {
	// Execute runs operation until it succeeds, the configured attempts are
	// exhausted, or ctx is done. The operation should be idempotent. When all
	// attempts fail the returned error is the last attempt's error, or every
	// attempt's error joined when configured with WithLastErrorOnly(false).
	Execute(ctx context.Context, operation func() error) error
}

type config struct {
	attempts    uint
	delay       time.Duration
	maxDelay    time.Duration
	lastErrOnly bool
}

// Option adjusts the retry configuration built by New.
type Option func(*config)

// WithAttempts sets the total number of attempts, counting the first call.
func WithAttempts(n uint) Option {
	return func(c *config) { c.attempts = n }
}

// WithDelay sets the base delay before the first re-attempt. Subsequent
// delays grow exponentially from it.
func WithDelay(d time.Duration) Option {
	return func(c *config) { c.delay = d }
}

// WithMaxDelay caps the exponential growth of the delay between attempts.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) { c.maxDelay = d }
}

// WithLastErrorOnly controls whether an exhausted execution reports only the
// final attempt's error (the default) or all of them joined.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) { c.lastErrOnly = b }
}

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New builds a Retry with the given options. The defaults are 3 attempts, a
// 1 second base delay capped at 5 seconds, and last-error-only reporting.
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{cfg: cfg}
}

func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	return retrygo.Do(operation,
		retrygo.Attempts(r.cfg.attempts),
		retrygo.Delay(r.cfg.delay),
		retrygo.MaxDelay(r.cfg.maxDelay),
		retrygo.DelayType(retrygo.BackOffDelay),
		retrygo.LastErrorOnly(r.cfg.lastErrOnly),
		retrygo.Context(ctx),
	)
}
