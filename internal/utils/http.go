package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Code    int             `json:"code,omitempty"`
	Cause   apperrors.Cause `json:"cause,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response with the given cause
func ErrorResponseHandler(c echo.Context, statusCode int, cause apperrors.Cause, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
		Cause:   cause,
	})
}

// AppErrorResponse renders err using its mapped status and cause. Internal
// details are only exposed when debug is set.
func AppErrorResponse(c echo.Context, err error, debug bool) error {
	return ErrorResponseHandler(c, apperrors.HTTPStatus(err), apperrors.CauseOf(err), apperrors.Message(err, debug))
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, cause apperrors.Cause, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, cause, errorMessage)
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, apperrors.CauseForbidden, errorMessage)
}
