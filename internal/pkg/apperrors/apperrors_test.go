package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusAndCause(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		cause  Cause
	}{
		{"missing auth", ErrMissingAuth, http.StatusUnauthorized, CauseMissingAuth},
		{"invalid token", ErrInvalidToken, http.StatusUnauthorized, CauseInvalidToken},
		{"bad credentials", Unauthorized("Invalid credentials"), http.StatusUnauthorized, CauseInvalidCredentials},
		{"forbidden", Forbidden("Invalid admin secret"), http.StatusForbidden, CauseForbidden},
		{"missing field", MissingField("passenger.NumberPhone", "phone required"), http.StatusBadRequest, CauseMissingField},
		{"invalid payload", InvalidPayload("bad json", errors.New("eof")), http.StatusBadRequest, CauseInvalidPayload},
		{"not found wrapped", fmt.Errorf("cancel: %w", NotFound("trip")), http.StatusNotFound, CauseNotFound},
		{"duplicate ticket", Conflict(ErrDuplicateTicketCode, "taken"), http.StatusConflict, CauseDuplicateTicketCode},
		{"duplicate entry", ErrDuplicateEntry, http.StatusConflict, CauseDuplicateEntry},
		{"transition", ErrInvalidTransition, http.StatusConflict, CauseInvalidTransition},
		{"rate limited", ErrRateLimited, http.StatusTooManyRequests, CauseRateLimited},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, CauseInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, HTTPStatus(tt.err))
			assert.Equal(t, tt.cause, CauseOf(tt.err))
		})
	}
}

func TestMessage_HidesInternalDetail(t *testing.T) {
	err := fmt.Errorf("failed to insert trip: %w", errors.New("pq: relation does not exist"))

	assert.Equal(t, "Internal server error", Message(err, false))
	assert.Contains(t, Message(err, true), "relation does not exist")
}

func TestMessage_AppError(t *testing.T) {
	err := MissingField("passenger.NumberPhone", "phone number is required")

	assert.Equal(t, "phone number is required", Message(err, false))
	assert.Equal(t, "phone number is required: passenger.NumberPhone", Message(err, true))
}

func TestError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	err := InvalidPayload("bad", inner)

	assert.ErrorIs(t, err, ErrInvalidPayload)
	assert.ErrorIs(t, err, inner)
}
