package database

import (
	"context"
	"math/rand"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/statement-processor/internal/domain/port/core"
)

// transientMarkers are lowercase fragments of driver errors worth retrying.
// sqlite reports writer contention as "database is locked" or SQLITE_BUSY.
var transientMarkers = []string{
	"database is locked",
	"database table is locked",
	"sqlite_busy",
	"deadlock",
	"serialization",
	"could not serialize",
	"connection reset",
	"connection refused",
	"too many connections",
	"server closed",
	"broken pipe",
	"lock timeout",
	"timeout",
	"eof",
}

// RetryPolicy describes how often and how patiently an operation is retried
type RetryPolicy struct {
	Attempts     int
	BaseDelay    time.Duration
	MaxDelay     time.Duration
	JitterFactor float64 // 0.0-1.0
	// Retryable decides whether an error is worth another attempt; nil retries transient errors
	Retryable func(error) bool
}

// TransactionRetryPolicy is used when opening a unit of work
func TransactionRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Attempts:     5,
		BaseDelay:    50 * time.Millisecond,
		MaxDelay:     time.Second,
		JitterFactor: 0.2,
	}
}

// ConnectRetryPolicy retries every connection failure with a fixed delay
func ConnectRetryPolicy(attempts int, delay time.Duration) RetryPolicy {
	if attempts < 1 {
		attempts = 1
	}
	return RetryPolicy{
		Attempts:  attempts,
		BaseDelay: delay,
		MaxDelay:  delay,
		Retryable: func(error) bool { return true },
	}
}

// Retry runs operation until it succeeds, fails permanently, the attempts
// run out or ctx is done. The last error is returned.
func Retry(ctx context.Context, policy RetryPolicy, logger coreport.Logger, name string, operation func(attempt int) error) error {
	retryable := policy.Retryable
	if retryable == nil {
		retryable = IsTransientError
	}
	attempts := policy.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if err = operation(attempt); err == nil {
			return nil
		}
		if !retryable(err) || attempt == attempts-1 {
			break
		}

		wait := policy.backoff(attempt)
		logger.Warn("Retrying database operation", map[string]any{
			"operation":   name,
			"attempt":     attempt + 1,
			"of":          attempts,
			"error":       err.Error(),
			"retry_after": wait.String(),
		})

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}
	return err
}

// backoff doubles BaseDelay per attempt up to MaxDelay and adds jitter
func (p RetryPolicy) backoff(attempt int) time.Duration {
	wait := p.BaseDelay << uint(attempt)
	if wait <= 0 || (p.MaxDelay > 0 && wait > p.MaxDelay) {
		wait = p.MaxDelay
	}
	if p.JitterFactor > 0 {
		wait += time.Duration(float64(wait) * p.JitterFactor * rand.Float64())
	}
	return wait
}

// IsTransientError reports whether err looks like contention or a dropped connection
func IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
