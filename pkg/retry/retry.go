// Package retry implements retry with exponential backoff and jitter.
package retry

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"strings"
	"time"
)

// Config controls the retry strategy.
type Config struct {
	// Attempts is the total number of tries, including the first one.
	Attempts int
	// BaseDelay is the delay before the first retry.
	BaseDelay time.Duration
	// MaxDelay caps the delay between retries.
	MaxDelay time.Duration
	// Multiplier is the exponential growth factor.
	Multiplier float64
	// Retryable marks error substrings worth retrying.
	// Empty means every error is retryable.
	Retryable []string
}

// Default returns a general-purpose retry configuration.
func Default() Config {
	return Config{
		Attempts:   5,
		BaseDelay:  time.Second,
		MaxDelay:   30 * time.Second,
		Multiplier: 2.0,
	}
}

// Postgres returns a configuration tuned for database startup,
// retrying only on connection-level failures.
func Postgres() Config {
	cfg := Default()
	cfg.Retryable = []string{
		"connection refused",
		"connection reset",
		"no such host",
		"i/o timeout",
		"the database system is starting up",
	}
	return cfg
}

// ErrInvalidConfig is returned when Attempts is not positive.
var ErrInvalidConfig = errors.New("retry: Attempts must be positive")

// Do runs fn until it succeeds or attempts are exhausted.
func Do(ctx context.Context, cfg Config, fn func() error) error {
	_, err := DoWithResult(ctx, cfg, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// DoWithResult runs fn until it succeeds or attempts are exhausted,
// returning the last result. Context cancellation aborts the wait.
func DoWithResult[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	var zero T
	if cfg.Attempts <= 0 {
		return zero, ErrInvalidConfig
	}

	var lastErr error
	for attempt := 0; attempt < cfg.Attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !retryable(err, cfg) || attempt == cfg.Attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(backoff(attempt, cfg)):
		}
	}

	return zero, lastErr
}

// backoff computes the delay before the next attempt with ±10% jitter.
func backoff(attempt int, cfg Config) time.Duration {
	delay := float64(cfg.BaseDelay) * math.Pow(cfg.Multiplier, float64(attempt))
	if delay > float64(cfg.MaxDelay) {
		delay = float64(cfg.MaxDelay)
	}
	//nolint:gosec // G404: jitter does not need a secure source
	jitter := delay * 0.1 * (rand.Float64()*2 - 1)
	return time.Duration(delay + jitter)
}

func retryable(err error, cfg Config) bool {
	if len(cfg.Retryable) == 0 {
		return true
	}
	msg := err.Error()
	for _, pattern := range cfg.Retryable {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}
