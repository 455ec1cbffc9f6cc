package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	var response ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func TestSuccessResponse(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		message    string
		data       interface{}
	}{
		{
			name:       "Success with string data",
			statusCode: http.StatusOK,
			message:    "Operation successful",
			data:       "test data",
		},
		{
			name:       "Success with map data",
			statusCode: http.StatusCreated,
			message:    "Resource created",
			data:       map[string]interface{}{"id": "123", "name": "test"},
		},
		{
			name:       "Success with nil data",
			statusCode: http.StatusOK,
			message:    "Success",
			data:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			err := SuccessResponse(c, tt.statusCode, tt.message, tt.data)
			assert.NoError(t, err)
			assert.Equal(t, tt.statusCode, rec.Code)

			var response Response
			err = json.Unmarshal(rec.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.True(t, response.Success)
			assert.Equal(t, tt.message, response.Message)
			assert.Equal(t, tt.data, response.Data)
		})
	}
}

func TestErrorResponseHandler(t *testing.T) {
	c, rec := newTestContext()

	err := ErrorResponseHandler(c, http.StatusConflict, apperrors.CauseDuplicateTicketCode, "ticket code already exists")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)

	response := decodeError(t, rec)
	assert.False(t, response.Success)
	assert.Equal(t, "ticket code already exists", response.Error)
	assert.Equal(t, http.StatusConflict, response.Code)
	assert.Equal(t, apperrors.CauseDuplicateTicketCode, response.Cause)
}

func TestAppErrorResponse(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		debug   bool
		status  int
		cause   apperrors.Cause
		message string
	}{
		{
			name:    "Not found",
			err:     fmt.Errorf("cancel trip: %w", apperrors.NotFound("trip")),
			status:  http.StatusNotFound,
			cause:   apperrors.CauseNotFound,
			message: "trip not found",
		},
		{
			name:    "Internal hidden",
			err:     errors.New("dial tcp 10.0.0.1:5432: connect: refused"),
			status:  http.StatusInternalServerError,
			cause:   apperrors.CauseInternal,
			message: "Internal server error",
		},
		{
			name:    "Internal shown in debug",
			err:     errors.New("dial tcp 10.0.0.1:5432: connect: refused"),
			debug:   true,
			status:  http.StatusInternalServerError,
			cause:   apperrors.CauseInternal,
			message: "dial tcp 10.0.0.1:5432: connect: refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			assert.NoError(t, AppErrorResponse(c, tt.err, tt.debug))
			assert.Equal(t, tt.status, rec.Code)

			response := decodeError(t, rec)
			assert.Equal(t, tt.cause, response.Cause)
			assert.Equal(t, tt.message, response.Error)
		})
	}
}

func TestUnauthorizedResponse(t *testing.T) {
	c, rec := newTestContext()

	assert.NoError(t, UnauthorizedResponse(c, apperrors.CauseMissingAuth, ""))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	response := decodeError(t, rec)
	assert.Equal(t, "Unauthorized", response.Error)
	assert.Equal(t, apperrors.CauseMissingAuth, response.Cause)
}

func TestForbiddenResponse(t *testing.T) {
	c, rec := newTestContext()

	assert.NoError(t, ForbiddenResponse(c, ""))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	response := decodeError(t, rec)
	assert.Equal(t, "Forbidden", response.Error)
	assert.Equal(t, apperrors.CauseForbidden, response.Cause)
}
