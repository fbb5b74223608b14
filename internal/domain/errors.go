package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the flight search console.
var (
	// ErrInvalidRequest indicates the search form cannot be turned into a query.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidMaxPrice indicates the max price input is not a number.
	ErrInvalidMaxPrice = fmt.Errorf("%w: maxPrice is not a number", ErrInvalidRequest)

	// ErrSearchInProgress indicates a search was triggered while another one
	// for the same session is still outstanding.
	ErrSearchInProgress = errors.New("search already in progress")

	// ErrSearchFailed is the parent of every remote search failure.
	ErrSearchFailed = errors.New("flight search failed")
)

// ErrorKind classifies why a remote search failed.
type ErrorKind string

// Known failure kinds.
const (
	// ErrorKindTransport means the request never produced a readable response.
	ErrorKindTransport ErrorKind = "transport"

	// ErrorKindStatus means the endpoint answered with a non-success status.
	ErrorKindStatus ErrorKind = "status"

	// ErrorKindDecode means the body was not a list of flight records.
	ErrorKindDecode ErrorKind = "decode"
)

// SearchError describes a failed remote search.
type SearchError struct {
	// Kind classifies the failure
	Kind ErrorKind

	// StatusCode is the HTTP status for ErrorKindStatus, zero otherwise
	StatusCode int

	// Err is the underlying error
	Err error
}

// Error implements the error interface.
func (e *SearchError) Error() string {
	if e.Kind == ErrorKindStatus {
		return fmt.Sprintf("flight search %s error (status %d): %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("flight search %s error: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *SearchError) Unwrap() error {
	return e.Err
}

// Is makes every SearchError match ErrSearchFailed.
func (e *SearchError) Is(target error) bool {
	return target == ErrSearchFailed
}

// NewTransportError wraps a network or body-read failure.
func NewTransportError(err error) *SearchError {
	return &SearchError{Kind: ErrorKindTransport, Err: err}
}

// NewStatusError records a non-success HTTP status.
func NewStatusError(statusCode int, body string) *SearchError {
	msg := body
	if msg == "" {
		msg = "empty body"
	}
	return &SearchError{Kind: ErrorKindStatus, StatusCode: statusCode, Err: errors.New(msg)}
}

// NewDecodeError wraps a response body that does not match the record schema.
func NewDecodeError(err error) *SearchError {
	return &SearchError{Kind: ErrorKindDecode, Err: err}
}

// WrapInvalidRequest creates an error wrapping ErrInvalidRequest with a formatted message.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest checks if the error is or wraps ErrInvalidRequest.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsSearchInProgress checks if the error is or wraps ErrSearchInProgress.
func IsSearchInProgress(err error) bool {
	return errors.Is(err, ErrSearchInProgress)
}

// KindOf returns the failure kind of a remote search error, or "" when err
// is not a SearchError.
func KindOf(err error) ErrorKind {
	var se *SearchError
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}

// IsTransportError reports whether err is a transport-level search failure.
func IsTransportError(err error) bool {
	return KindOf(err) == ErrorKindTransport
}
