package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// RetryProvider retries transient failures with exponential backoff and
// ±20% jitter. An invalid response is retried once; truncation and
// cancellation are never retried.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps p with retries. MaxAttempts below one means one attempt.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.Multiplier < 1 {
		cfg.Multiplier = 1
	}
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var (
		err            error
		retriedInvalid bool
		wait           = r.config.InitialWait
	)
	for attempt := 1; ; attempt++ {
		var resp *Response
		resp, err = r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		if attempt >= r.config.MaxAttempts || !retryable(err, &retriedInvalid) {
			return nil, err
		}

		pause := jitter(min(wait, r.config.MaxWait))
		var rl *ErrRateLimit
		if errors.As(err, &rl) && rl.RetryAfter > 0 {
			pause = rl.RetryAfter
		}

		t := time.NewTimer(pause)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
		wait = time.Duration(float64(wait) * r.config.Multiplier)
	}
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

func retryable(err error, retriedInvalid *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var trunc *ErrMaxTokensExceeded
	if errors.As(err, &trunc) {
		return false
	}
	var inv *ErrInvalidResponse
	if errors.As(err, &inv) {
		if *retriedInvalid {
			return false
		}
		*retriedInvalid = true
	}
	// Rate limits, outages and plain network errors.
	return true
}

func jitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	return time.Duration(float64(d) * (0.8 + 0.4*rand.Float64()))
}
