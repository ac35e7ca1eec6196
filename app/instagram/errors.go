package instagram

import (
	"fmt"
	"net/http"
)

// Error is a terminal inspection failure carrying the HTTP status code the
// API surface answers with. Every failure on the inspection path maps to one
// of these; there are no retries and no partial results.
type Error struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

var (
	// ErrInvalidURL rejects input that does not look like an Instagram post
	// or reel URL.
	ErrInvalidURL = &Error{
		StatusCode: http.StatusBadRequest,
		Message:    "Please provide a valid Instagram post/reel URL.",
	}

	// ErrNoMedia signals that the page was fetched but yielded no media
	// candidates.
	ErrNoMedia = &Error{
		StatusCode: http.StatusUnprocessableEntity,
		Message:    "Could not extract media from this URL. It may be private or blocked.",
	}
)

// newUpstreamError propagates the status code Instagram answered with.
func newUpstreamError(statusCode int) *Error {
	return &Error{
		StatusCode: statusCode,
		Message:    "Instagram responded with an error.",
	}
}

// newFetchError covers transport-level failures: DNS, connection refused,
// timeouts.
func newFetchError(err error) *Error {
	return &Error{
		StatusCode: http.StatusBadGateway,
		Message:    "Failed to fetch the Instagram page.",
		Err:        err,
	}
}
