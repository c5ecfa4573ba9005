// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidRequest is returned when an incoming generation request
	// fails validation. The client-facing message is InvalidRequestMessage;
	// per-field detail is intentionally not exposed.
	ErrInvalidRequest = errors.New("invalid generation request")

	// ErrRateLimited is returned when a client has exhausted its
	// sliding-window request quota.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// Fixed client-facing messages. These match the strings the public API has
// always returned, so clients that key off them keep working.
const (
	InvalidRequestMessage = "Invalid input. Please provide topic, class (6-10), and language (English/Hindi)."
	RateLimitedMessage    = "Too many generation requests. Please wait and try again."
	InternalErrorMessage  = "Failed to generate study pack. Please try again."
)
