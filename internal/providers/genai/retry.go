package genai

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"

	"server/internal/infra"
)

const (
	retryMaxAttempts = 3
	retryBaseDelay   = time.Second
)

// ContentCaller is the slice of the Gemini client the retry layer depends on.
type ContentCaller interface {
	GenerateContent(ctx context.Context, model string, req Request) (*Response, error)
}

// Retrier wraps a single generateContent call with bounded exponential
// backoff. Only failures carrying an internal-error signature are retried;
// everything else propagates unchanged on the first attempt.
type Retrier struct {
	caller ContentCaller
	logger infra.Logger

	attempts  int
	baseDelay time.Duration
	sleep     func(ctx context.Context, d time.Duration) error
}

// NewRetrier builds a Retrier with the standard 3-attempt, 1s/2s policy.
func NewRetrier(caller ContentCaller, logger *infra.Logger) *Retrier {
	l := zerolog.New(io.Discard)
	if logger != nil {
		l = *logger
	}
	return &Retrier{
		caller:    caller,
		logger:    l,
		attempts:  retryMaxAttempts,
		baseDelay: retryBaseDelay,
		sleep:     sleepContext,
	}
}

// Generate performs the call, retrying transient failures with delays of
// baseDelay * 2^(attempt-1) between attempts. The backoff is local to the
// calling goroutine; concurrent campaign items back off independently.
func (r *Retrier) Generate(ctx context.Context, model string, req Request) (*Response, error) {
	var lastErr error
	for attempt := 1; attempt <= r.attempts; attempt++ {
		resp, err := r.caller.GenerateContent(ctx, model, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !IsInternal(err) || attempt == r.attempts {
			return nil, err
		}

		delay := r.baseDelay << (attempt - 1)
		r.logger.Warn().
			Err(err).
			Str("model", model).
			Int("attempt", attempt).
			Dur("delay", delay).
			Msg("genai: transient failure, retrying")

		if err := r.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}
	return nil, lastErr
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
