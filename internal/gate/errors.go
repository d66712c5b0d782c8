package gate

import (
	"errors"
	"time"
)

// InputError is a client mistake. Message is safe to return verbatim.
type InputError struct {
	Message string
}

func (e *InputError) Error() string { return e.Message }

var (
	ErrInvalidFormat  = &InputError{Message: "Invalid request format"}
	ErrEmptyOrInvalid = &InputError{Message: "Empty or invalid message"}
	ErrTooLong        = &InputError{Message: "Message too long (max 500 characters)"}
	ErrEmptyText      = &InputError{Message: "Empty text"}
)

// ErrRateLimited matches any *RateLimitError via errors.Is.
var ErrRateLimited = errors.New("rate limit exceeded")

// RateLimitError is returned by Limiter.Allow when a window is full.
type RateLimitError struct {
	Route string
	// RetryAfter is how long until the oldest blocking request leaves its window.
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded for " + e.Route
}

func (e *RateLimitError) Is(target error) bool { return target == ErrRateLimited }
