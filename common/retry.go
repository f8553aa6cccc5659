package common

import (
	"context"
	"errors"
	"time"

	"github.com/agglayer/aggsandbox/log"
	"github.com/agglayer/aggsandbox/types"
	"github.com/cenkalti/backoff/v4"
)

const (
	defaultMaxAttempts     = 10
	defaultInitialInterval = 2 * time.Second
	defaultMaxInterval     = 10 * time.Second
	defaultMultiplier      = 1.5
)

// RetryPolicy bounds how long transient failures are retried. Only errors
// classified as retryable by types.IsRetryable are retried, anything else
// is returned on the first attempt.
type RetryPolicy struct {
	// MaxAttempts is the maximum number of attempts, including the first one
	MaxAttempts int
	// InitialInterval is the wait after the first failed attempt
	InitialInterval time.Duration
	// MaxInterval caps the wait between attempts
	MaxInterval time.Duration
	// Multiplier grows the wait after each failed attempt
	Multiplier float64
}

// DefaultRetryPolicy covers the ~20s the sandbox needs to propagate a global exit root
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:     defaultMaxAttempts,
		InitialInterval: defaultInitialInterval,
		MaxInterval:     defaultMaxInterval,
		Multiplier:      defaultMultiplier,
	}
}

func (p RetryPolicy) backOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = p.InitialInterval
	exp.MaxInterval = p.MaxInterval
	if p.Multiplier >= 1 {
		exp.Multiplier = p.Multiplier
	}
	exp.RandomizationFactor = 0
	// the attempt count is the bound, not the elapsed time
	exp.MaxElapsedTime = 0

	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(attempts-1)), ctx)
}

// Do runs op until it succeeds, fails with a non retryable error, the
// attempts are exhausted or ctx is done. Exhaustion is reported as a
// RetriesExhausted ClaimError that still matches the last failure kind.
// op receives the 1-based attempt number.
func (p RetryPolicy) Do(ctx context.Context, logger *log.Logger, name string, op func(attempt int) error) error {
	attempt := 0
	var lastErr error
	err := backoff.RetryNotify(func() error {
		attempt++
		err := op(attempt)
		if err == nil {
			return nil
		}
		lastErr = err
		if !types.IsRetryable(err) {
			return backoff.Permanent(err)
		}

		return err
	}, p.backOff(ctx), func(err error, wait time.Duration) {
		if logger != nil {
			logger.Debugf("%s attempt %d/%d failed, retrying in %s: %v", name, attempt, p.MaxAttempts, wait, err)
		}
	})
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		if lastErr != nil {
			return errors.Join(ctxErr, lastErr)
		}

		return ctxErr
	}
	if types.IsRetryable(err) {
		return &types.ClaimError{
			Kind: types.KindRetriesExhausted,
			Op:   name,
			Last: types.KindOf(err),
			Err:  err,
		}
	}

	return err
}
