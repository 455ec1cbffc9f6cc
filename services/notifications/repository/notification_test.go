package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*NotificationRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return NewNotificationRepo(&models.Config{}, sqlx.NewDb(mockDB, "sqlmock")), mock
}

func TestMarkPassengerSmsSent(t *testing.T) {
	tripID := uuid.New()

	tests := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		assertErr func(t *testing.T, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE trips SET passenger_sms_sent = true`).
					WithArgs(sqlmock.AnyArg(), tripID).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertErr: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Trip gone",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE trips SET passenger_sms_sent = true`).
					WithArgs(sqlmock.AnyArg(), tripID).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			assertErr: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, apperrors.ErrNotFound))
			},
		},
		{
			name: "Database error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE trips SET passenger_sms_sent = true`).
					WillReturnError(errors.New("connection reset"))
			},
			assertErr: func(t *testing.T, err error) {
				assert.ErrorContains(t, err, "failed to mark passenger sms sent")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRepo(t)
			tt.mockSetup(mock)

			tt.assertErr(t, repo.MarkPassengerSmsSent(context.Background(), tripID))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
