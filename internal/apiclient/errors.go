package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNetwork matches every transport failure (connection refused, timeout, truncated body)
var ErrNetwork = errors.New("network error")

// NetworkError is returned when the remote API could not be reached
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrNetwork) match any NetworkError
func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

// FallbackMessage is shown when the remote API rejects a request without saying why
const FallbackMessage = "Request failed, please try again"

// APIError is a rejection reported by the remote API
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("remote api rejected request (%d): %s", e.Status, e.UserMessage())
}

// UserMessage returns the remote message verbatim, or a generic fallback
func (e *APIError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return FallbackMessage
}

// HTTPStatus is the status to answer the console with
func (e *APIError) HTTPStatus() int {
	if e.Status < http.StatusBadRequest {
		return http.StatusBadRequest
	}
	return e.Status
}

// IsNotFound reports whether err is a remote 404
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
