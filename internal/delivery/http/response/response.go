// Package response defines the wire shapes shared by all handlers.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorInfo is the payload inside the error envelope.
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g. "TASK_NOT_FOUND"
	Message string `json:"message"`           // User-friendly message
	Details string `json:"details,omitempty"` // Optional detail for debugging
}

// ErrorBody is the unified error envelope. Successful responses carry the
// resource JSON directly, only failures are wrapped.
type ErrorBody struct {
	Error ErrorInfo `json:"error"`
}

// JSON writes a successful response with the given payload.
func JSON(c echo.Context, statusCode int, payload any) error {
	return c.JSON(statusCode, payload)
}

// NoContent writes an empty 204 response.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error writes the error envelope.
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorBody{
		Error: ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// NotFound 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, "")
}

// Conflict 409 error
func Conflict(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusConflict, errorCode, message, "")
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}
