// Package response provides the JSON response builders of the console API.
// Every error response has the same ErrorDetail body.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorDetail contains structured error information.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Kind is the remote failure kind (transport, status, decode), if any
	Kind string `json:"kind,omitempty"`

	// Details contains field-specific error details (for validation errors)
	Details map[string]string `json:"details,omitempty"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest   = "invalid_request"
	CodeValidationError  = "validation_error"
	CodeSearchInProgress = "search_in_progress"
	CodeBadGateway       = "bad_gateway"
	CodeTimeout          = "timeout"
	CodeInternalError    = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequest   = "Failed to parse request"
	MsgValidationFailed = "Request validation failed"
	MsgSearchInProgress = "A search is already in progress for this session"
	MsgUpstreamFailed   = "The flight search service could not be reached or answered with an error"
	MsgTimeout          = "Request timed out"
	MsgRequestCancelled = "Request was cancelled"
	MsgInternalError    = "An unexpected error occurred"
)

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}
