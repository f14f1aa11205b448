package domain

import "errors"

// Sentinel errors used throughout the application.
// Handlers translate these to HTTP status codes and client-facing messages
// via a single mapError function.
var (
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrNotFound         = errors.New("not found")
	ErrRateLimited      = errors.New("rate limit exceeded")
)
