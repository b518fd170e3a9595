package console

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when the backend rejects the credential.
	// The session has already been torn down by the time callers see it;
	// retrying with the same credential is pointless.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation marks client-side precondition failures. Nothing was
	// sent over the network.
	ErrValidation = errors.New("validation failed")

	// ErrProfileResolution marks a signed-in identity whose profile could
	// not be fully resolved. The session degrades to a minimal employee
	// session; the error is a warning, not a failure.
	ErrProfileResolution = errors.New("profile resolution failed")
)

// RequestError is a non-401 failure response from the backend. The message is
// server-supplied when available.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed (status %d)", e.StatusCode)
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
