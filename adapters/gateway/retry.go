package gateway

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/DanielPopoola/heidelpay-go/core/domain"
	"github.com/DanielPopoola/heidelpay-go/core/ports"
)

type RetryConfig struct {
	BaseDelay   time.Duration
	MaxAttempts int
}

type RetryHTTPClient struct {
	inner       ports.HTTPAdapter
	baseDelay   time.Duration
	maxAttempts int
}

func NewRetryHTTPClient(inner ports.HTTPAdapter, cfg RetryConfig) *RetryHTTPClient {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &RetryHTTPClient{
		inner:       inner,
		baseDelay:   cfg.BaseDelay,
		maxAttempts: maxAttempts,
	}
}

// Send with retry logic. Requests that may not be repeated safely are sent once.
func (r *RetryHTTPClient) Send(ctx context.Context, req *ports.Request) (*ports.Response, error) {
	if !isReplayable(req) {
		return r.inner.Send(ctx, req)
	}

	var lastErr error

	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		resp, err := r.inner.Send(ctx, req)
		if err == nil {
			return resp, nil
		}

		lastErr = err

		if !isRetryable(err) {
			return nil, err
		}

		if attempt < r.maxAttempts-1 {
			if err := sleep(ctx, r.backoff(attempt)); err != nil {
				return nil, err
			}
		}
	}

	if r.maxAttempts == 1 {
		return nil, lastErr
	}
	return nil, fmt.Errorf("maximum retries exceeded: %w", lastErr)
}

func isReplayable(req *ports.Request) bool {
	switch req.Method {
	case http.MethodGet, http.MethodPut, http.MethodDelete:
		return true
	}
	return req.IdempotencyKey != ""
}

// Helper: to check retryable errors
func isRetryable(err error) bool {
	if apiErr, ok := domain.IsAPIError(err); ok {
		return apiErr.IsRetryable()
	}

	var sdkErr *domain.SDKError
	if errors.As(err, &sdkErr) {
		return false
	}

	if errors.Is(err, context.Canceled) {
		return false
	}

	return true
}

// Backoff calculation with exponential delay and jitter
func (r *RetryHTTPClient) backoff(attempt int) time.Duration {
	base := r.baseDelay * time.Duration(1<<attempt)
	if base <= 0 {
		return 0
	}

	jitter := time.Duration(rand.Int63n(int64(base)/2 + 1))

	return base + jitter
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
