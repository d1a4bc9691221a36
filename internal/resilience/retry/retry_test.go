package retry

import (
	"context"
	"errors"
	"syscall"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"vmfit/internal/observability/metrics"
)

func fastConfig(maxAttempts int, classify func(error) bool) Config {
	return Config{
		Operation:    "test-op",
		MaxAttempts:  maxAttempts,
		InitialDelay: time.Millisecond,
		MaxDelay:     2 * time.Millisecond,
		Multiplier:   1.0,
		Classify:     classify,
	}
}

func TestWithBackoff_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := WithBackoff(context.Background(), fastConfig(3, nil), func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 invocation, got %d", calls)
	}
}

func TestWithBackoff_FailTwiceThenSucceed(t *testing.T) {
	attemptCounter := metrics.RetryAttemptsTotal.WithLabelValues("test-op")
	before := testutil.ToFloat64(attemptCounter)

	calls := 0
	err := WithBackoff(context.Background(), fastConfig(3, nil), func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected exactly 3 invocations, got %d", calls)
	}
	if got := testutil.ToFloat64(attemptCounter) - before; got != 2 {
		t.Errorf("retry attempt counter grew by %v, want one per failed attempt (2)", got)
	}
}

func TestWithBackoff_ExhaustsAttempts(t *testing.T) {
	lastErr := errors.New("attempt 3 failure")
	calls := 0
	err := WithBackoff(context.Background(), fastConfig(3, nil), func() error {
		calls++
		if calls == 3 {
			return lastErr
		}
		return errors.New("earlier failure")
	})
	if calls != 3 {
		t.Errorf("expected exactly 3 invocations, got %d", calls)
	}
	if err == nil {
		t.Fatal("expected error after exhaustion")
	}
	if !errors.Is(err, lastErr) {
		t.Errorf("expected last observed error to be wrapped, got %v", err)
	}
}

func TestWithBackoff_NonRetryableAbortsImmediately(t *testing.T) {
	fatal := errors.New("bad input")
	calls := 0
	cfg := fastConfig(5, func(err error) bool {
		return errors.Is(err, ErrRateLimited)
	})
	err := WithBackoff(context.Background(), cfg, func() error {
		calls++
		return fatal
	})
	if calls != 1 {
		t.Errorf("expected 1 invocation for non-retryable error, got %d", calls)
	}
	if !errors.Is(err, fatal) {
		t.Errorf("expected fatal error to surface, got %v", err)
	}
}

func TestWithBackoff_RateLimitOnlyPolicyRetries(t *testing.T) {
	calls := 0
	cfg := fastConfig(3, func(err error) bool {
		return errors.Is(err, ErrRateLimited)
	})
	err := WithBackoff(context.Background(), cfg, func() error {
		calls++
		if calls < 2 {
			return ErrRateLimited
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 invocations, got %d", calls)
	}
}

func TestWithBackoff_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	cfg := fastConfig(5, nil)
	cfg.InitialDelay = 50 * time.Millisecond
	err := WithBackoff(ctx, cfg, func() error {
		calls++
		cancel()
		return errors.New("transient")
	})
	if err == nil {
		t.Fatal("expected error after cancellation")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected retry loop to stop after cancel, got %d invocations", calls)
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "context canceled", err: context.Canceled, want: false},
		{name: "connection refused", err: syscall.ECONNREFUSED, want: true},
		{name: "http 500", err: &HTTPError{StatusCode: 500, Message: "boom"}, want: true},
		{name: "http 429", err: &HTTPError{StatusCode: 429, Message: "slow down"}, want: true},
		{name: "http 404", err: &HTTPError{StatusCode: 404, Message: "missing"}, want: false},
		{name: "plain error", err: errors.New("nope"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
