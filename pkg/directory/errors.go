package directory

import (
	"errors"
	"fmt"
)

const failurePrefix = "Failed to fetch profile data"

var (
	ErrEmptyIdentifier = errors.New("identifier is required")
	ErrStatus          = errors.New("non-success status")
	ErrTransport       = errors.New("transport failure")
	ErrMalformedBody   = errors.New("malformed response body")
)

// FetchError is returned for every failed lookup. Its message is shown to
// the user verbatim next to a retry affordance.
type FetchError struct {
	StatusCode int
	StatusText string
	Kind       error
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %d %s", failurePrefix, e.StatusCode, e.StatusText)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", failurePrefix, e.Err)
	}
	return fmt.Sprintf("%s: %v", failurePrefix, e.Kind)
}

func (e *FetchError) Unwrap() []error {
	out := make([]error, 0, 2)
	if e.Kind != nil {
		out = append(out, e.Kind)
	}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}
