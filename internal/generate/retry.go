package generate

import (
	"errors"
	"fmt"
	"time"
)

// RetryableError indicates a transient generation failure: transport
// error, timeout, or a non-200 status from the backend.
type RetryableError struct {
	StatusCode int
	Message    string
}

func (e *RetryableError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("retryable error: %s", truncate(e.Message, 200))
	}
	return fmt.Sprintf("retryable error (status %d): %s", e.StatusCode, truncate(e.Message, 200))
}

// IsRetryable checks if an error is worth retrying.
func IsRetryable(err error) bool {
	var retryErr *RetryableError
	return errors.As(err, &retryErr)
}

// MaxAttempts bounds generation retries per topic. Exhausting them
// degrades to an empty candidate rather than failing the run.
const MaxAttempts = 2

// RetryBackoff is the constant pause between attempts. The backend is a
// single local model; exponential backoff buys nothing here.
const RetryBackoff = 2 * time.Second

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
