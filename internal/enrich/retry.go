package enrich

import (
	"errors"
	"math/rand"
	"time"
)

// DefaultMaxRetries bounds attempts per enrichment request.
const DefaultMaxRetries = 3

// IsRetryable checks if an error is worth retrying.
func IsRetryable(err error) bool {
	var retryErr *RetryableError
	return errors.As(err, &retryErr)
}

// DefaultBackoffBase is the first retry delay; later attempts double it.
const DefaultBackoffBase = time.Second

// Backoff returns a duration for attempt n (0-indexed) with jitter.
func Backoff(attempt int, base time.Duration) time.Duration {
	if base <= 0 {
		base = DefaultBackoffBase
	}
	d := base << uint(attempt)
	if max := 30 * base; d > max {
		d = max
	}
	jitter := time.Duration(rand.Int63n(int64(d)/2 + 1))
	return d + jitter
}
