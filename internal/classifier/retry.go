package classifier

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrRetriesExhausted signals that a batch failed every attempt. Callers
// must treat this as fatal for the whole run: skipping a batch would bias
// the vocabulary toward earlier candidates without explanation.
var ErrRetriesExhausted = errors.New("classifier: retries exhausted")

// Retrying wraps a Checker with exponential backoff. The wait doubles each
// attempt starting from Base, capped at MaxWait when set.
type Retrying struct {
	Next       Checker
	MaxRetries int
	Base       time.Duration
	MaxWait    time.Duration

	// sleep is swapped out in tests.
	sleep func(time.Duration)
}

// NewRetrying builds a retry wrapper with the given ceiling and base delay.
func NewRetrying(next Checker, maxRetries int, base time.Duration) *Retrying {
	if maxRetries < 1 {
		maxRetries = 1
	}
	if base <= 0 {
		base = time.Second
	}
	return &Retrying{
		Next:       next,
		MaxRetries: maxRetries,
		Base:       base,
		MaxWait:    2 * time.Minute,
		sleep:      time.Sleep,
	}
}

// Check resubmits the batch until it succeeds or the ceiling is exhausted.
func (r *Retrying) Check(ctx context.Context, batch []string) ([]Verdict, error) {
	var lastErr error
	wait := r.Base
	for attempt := 1; attempt <= r.MaxRetries; attempt++ {
		verdicts, err := r.Next.Check(ctx, batch)
		if err == nil {
			return verdicts, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, fmt.Errorf("classifier: %w", ctx.Err())
		}
		if attempt < r.MaxRetries {
			r.sleep(wait)
			wait *= 2
			if r.MaxWait > 0 && wait > r.MaxWait {
				wait = r.MaxWait
			}
		}
	}
	return nil, fmt.Errorf("%w after %d attempts: %v", ErrRetriesExhausted, r.MaxRetries, lastErr)
}
