// Package mockapi implements a local stand-in for the AgriProxy backend:
// the REST contract the client gateways speak, served by echo over an
// in-memory user store. It exists for development and integration tests;
// nothing in the application layer depends on it.
package mockapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// envelope is the uniform response body of the backend contract.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Token   string `json:"token,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ok writes a success envelope.
func ok(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// okWithToken writes a success envelope carrying a freshly issued token.
func okWithToken(c echo.Context, statusCode int, data any, token, message string) error {
	return c.JSON(statusCode, envelope{
		Success: true,
		Message: message,
		Token:   token,
		Data:    data,
	})
}

// fail writes a failure envelope.
func fail(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, envelope{
		Success: false,
		Message: message,
		Error:   message,
	})
}
