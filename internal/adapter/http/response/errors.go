package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// InvalidRequest writes a 400 response for input that could not be parsed.
func InvalidRequest(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeInvalidRequest,
		Message: MsgInvalidRequest,
	})
}

// ValidationError writes a 400 response with per-field details.
func ValidationError(c echo.Context, details map[string]string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeValidationError,
		Message: MsgValidationFailed,
		Details: details,
	})
}

// ValidationErrorWithMessage writes a 400 response with a custom message.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeValidationError,
		Message: message,
	})
}

// SearchInProgress writes a 409 response for an overlapping search.
func SearchInProgress(c echo.Context) error {
	return c.JSON(http.StatusConflict, &ErrorDetail{
		Code:    CodeSearchInProgress,
		Message: MsgSearchInProgress,
	})
}

// BadGateway writes a 502 response for a failed remote search.
func BadGateway(c echo.Context, kind string) error {
	return c.JSON(http.StatusBadGateway, &ErrorDetail{
		Code:    CodeBadGateway,
		Message: MsgUpstreamFailed,
		Kind:    kind,
	})
}

// GatewayTimeout writes a 504 response.
func GatewayTimeout(c echo.Context) error {
	return c.JSON(http.StatusGatewayTimeout, &ErrorDetail{
		Code:    CodeTimeout,
		Message: MsgTimeout,
	})
}

// RequestCancelled writes a 504 response for a cancelled request.
func RequestCancelled(c echo.Context) error {
	return c.JSON(http.StatusGatewayTimeout, &ErrorDetail{
		Code:    CodeTimeout,
		Message: MsgRequestCancelled,
	})
}

// InternalServerError writes a 500 response.
func InternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, &ErrorDetail{
		Code:    CodeInternalError,
		Message: MsgInternalError,
	})
}
