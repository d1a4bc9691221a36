// Package retry provides bounded retry logic for external calls.
// Two policies are used in this system: a fixed-delay blind retry for the
// scheduled blog-generation job, and an exponential backoff that retries
// only rate-limit signals for generative API calls.
package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net"
	"net/http"
	"syscall"
	"time"

	"vmfit/internal/observability/metrics"
)

// ErrRateLimited is the distinguished transient-error signal from a
// generation provider. The generation policy retries only this error.
var ErrRateLimited = errors.New("rate limited")

// Config holds the configuration for retry logic.
type Config struct {
	// Operation names the wrapped call in logs and metrics.
	Operation string

	// MaxAttempts is the total number of attempts, including the first (>= 1).
	MaxAttempts int

	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration

	// MaxDelay is the maximum delay between retries.
	MaxDelay time.Duration

	// Multiplier is the backoff multiplier. 1.0 yields a fixed delay.
	Multiplier float64

	// JitterFraction is the fraction of delay to add as random jitter (0.0 to 1.0).
	JitterFraction float64

	// Classify decides whether an error is worth retrying.
	// A nil Classify retries every error (blind retry).
	Classify func(error) bool
}

// ScheduledJobConfig returns the fixed-delay blind-retry policy used by the
// cron-triggered blog generation job.
func ScheduledJobConfig() Config {
	return Config{
		Operation:    "scheduled-job",
		MaxAttempts:  3,
		InitialDelay: 5 * time.Second,
		MaxDelay:     5 * time.Second,
		Multiplier:   1.0,
	}
}

// GenerationConfig returns the policy for generative API calls:
// exponential doubling delay, retrying only the rate-limit signal.
// Every other failure is treated as immediately fatal.
func GenerationConfig() Config {
	return Config{
		Operation:      "generation-api",
		MaxAttempts:    3,
		InitialDelay:   2 * time.Second,
		MaxDelay:       30 * time.Second,
		Multiplier:     2.0,
		JitterFraction: 0.1,
		Classify: func(err error) bool {
			return errors.Is(err, ErrRateLimited)
		},
	}
}

// ProviderFetchConfig returns the policy for content-provider HTTP fetches.
// Transient network and 5xx/429 failures are retried.
func ProviderFetchConfig() Config {
	return Config{
		Operation:      "provider-fetch",
		MaxAttempts:    3,
		InitialDelay:   500 * time.Millisecond,
		MaxDelay:       5 * time.Second,
		Multiplier:     2.0,
		JitterFraction: 0.1,
		Classify:       IsRetryable,
	}
}

// WithBackoff executes fn under the given retry policy.
// On success it returns nil immediately. Each failed attempt is logged and
// counted before deciding whether to retry; after MaxAttempts consecutive
// failures the last error is returned wrapped.
func WithBackoff(ctx context.Context, cfg Config, fn func() error) error {
	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		lastErr = fn()

		if lastErr == nil {
			if attempt > 1 {
				slog.Info("operation succeeded after retry",
					slog.String("operation", cfg.Operation),
					slog.Int("attempt", attempt))
			}
			return nil
		}

		// Report the failed attempt before deciding anything.
		metrics.RecordRetryAttempt(cfg.Operation)
		slog.Warn("operation attempt failed",
			slog.String("operation", cfg.Operation),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", cfg.MaxAttempts),
			slog.Any("error", lastErr))

		// Context errors are never retried.
		if errors.Is(lastErr, context.Canceled) || errors.Is(lastErr, context.DeadlineExceeded) {
			return lastErr
		}

		if cfg.Classify != nil && !cfg.Classify(lastErr) {
			slog.Warn("non-retryable error, aborting",
				slog.String("operation", cfg.Operation),
				slog.Int("attempt", attempt),
				slog.Any("error", lastErr))
			return lastErr
		}

		if attempt == cfg.MaxAttempts {
			break
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return fmt.Errorf("retry aborted: %w", ctx.Err())
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
		delay = addJitter(delay, cfg.JitterFraction)
	}

	return fmt.Errorf("max retry attempts (%d) exceeded: %w", cfg.MaxAttempts, lastErr)
}

// IsRetryable determines if an error from an HTTP provider is worth retrying.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ETIMEDOUT) ||
		errors.Is(err, syscall.ENETUNREACH) {
		return true
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.StatusCode >= 500 && httpErr.StatusCode < 600 {
			return true
		}
		if httpErr.StatusCode == http.StatusTooManyRequests {
			return true
		}
		if httpErr.StatusCode == http.StatusRequestTimeout {
			return true
		}
	}

	return false
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// addJitter adds random jitter to a duration to prevent thundering herd.
func addJitter(duration time.Duration, jitterFraction float64) time.Duration {
	if jitterFraction <= 0 {
		return duration
	}
	if jitterFraction > 1.0 {
		jitterFraction = 1.0
	}
	// #nosec G404 -- math/rand is acceptable for backoff jitter.
	jitter := time.Duration(rand.Float64() * float64(duration) * jitterFraction)
	return duration + jitter
}
