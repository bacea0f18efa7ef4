package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// WithRetry retries rate limits, outages and network errors with jittered
// exponential backoff. An invalid response is retried once; truncation and
// context errors are returned at once.
func WithRetry(p Provider, cfg RetryConfig, log *zap.Logger) Provider {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &retrying{Provider: p, cfg: cfg, log: log}
}

type retrying struct {
	Provider
	cfg RetryConfig
	log *zap.Logger
}

func (r *retrying) Generate(ctx context.Context, req Request) (*Response, error) {
	var (
		err          error
		invalidTried bool
	)
	for attempt := range r.cfg.MaxAttempts {
		if attempt > 0 {
			wait := r.cfg.delay(attempt-1, err)
			r.log.Debug("retrying llm request",
				zap.String("purpose", req.Purpose),
				zap.Int("attempt", attempt+1),
				zap.Duration("wait", wait),
				zap.Error(err),
			)
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
		}

		var resp *Response
		if resp, err = r.Provider.Generate(ctx, req); err == nil {
			return resp, nil
		}
		if !retryable(err, &invalidTried) {
			return nil, err
		}
	}
	return nil, err
}

func retryable(err error, invalidTried *bool) bool {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	case errors.Is(err, ErrMaxTokensExceeded):
		return false
	case errors.Is(err, ErrInvalidResponse):
		if *invalidTried {
			return false
		}
		*invalidTried = true
		return true
	}
	return true
}

// delay is the wait before retry n (0-based). A provider's Retry-After wins.
func (c RetryConfig) delay(n int, err error) time.Duration {
	if d, ok := RetryAfterOf(err); ok {
		return d
	}
	wait := float64(c.InitialWait)
	for range n {
		wait *= c.Multiplier
	}
	if ceiling := float64(c.MaxWait); ceiling > 0 && wait > ceiling {
		wait = ceiling
	}
	wait *= 0.8 + 0.4*rand.Float64() // ±20%
	return time.Duration(wait)
}
