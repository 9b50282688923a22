package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retryProvider re-issues transient failures with exponential backoff and
// jitter. Bad-payload failures get a single extra attempt (a second bad
// batch usually means the prompt, not luck); truncation is never retried.
type retryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps a Provider with the retry policy.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retryProvider{inner: p, cfg: cfg}
}

func (r *retryProvider) ModelID() string {
	return r.inner.ModelID()
}

func (r *retryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	badPayloads := 0

	for attempt := range r.cfg.MaxAttempts {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}

		var pErr *Error
		if errors.As(err, &pErr) {
			switch pErr.Kind {
			case KindTruncated:
				return nil, err
			case KindBadPayload:
				badPayloads++
				if badPayloads > 1 {
					return nil, err
				}
			}
		}

		if attempt == r.cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.delay(attempt, lastErr)):
		}
	}

	return nil, lastErr
}

// delay picks the wait before the next attempt: the server's Retry-After
// when a rate limit carries one, otherwise exponential backoff capped at
// MaxWait with ±20% jitter.
func (r *retryProvider) delay(attempt int, err error) time.Duration {
	var pErr *Error
	if errors.As(err, &pErr) && pErr.Kind == KindRateLimited && pErr.RetryAfter > 0 {
		return pErr.RetryAfter
	}

	wait := min(
		float64(r.cfg.InitialWait)*math.Pow(r.cfg.Multiplier, float64(attempt)),
		float64(r.cfg.MaxWait),
	)
	wait *= 1 + 0.2*(2*rand.Float64()-1)
	return time.Duration(max(wait, 0))
}
