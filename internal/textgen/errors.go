package textgen

import "errors"

var (
	// ErrNotConfigured indicates no API key was supplied.
	ErrNotConfigured = errors.New("text generation not configured")

	// ErrUnavailable indicates the generation service could not be reached
	// or answered with a non-200 status.
	ErrUnavailable = errors.New("text generation unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("text generation timed out")

	// ErrEmptyResponse indicates the service answered without any text.
	ErrEmptyResponse = errors.New("text generation returned no text")
)
