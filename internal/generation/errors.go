package generation

import "errors"

// Common errors returned by Generator implementations.
var (
	// ErrRequestFailed is returned when the provider request itself fails:
	// transport errors or a non-success status from the upstream service.
	ErrRequestFailed = errors.New("provider request failed")

	// ErrInvalidResponse is returned when the provider response lacks the
	// expected content or the content is not well-formed JSON.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrInvalidConfig is returned when a generator is constructed with an
	// unusable configuration.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
