package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testTripID      = uuid.MustParse("550e8400-e29b-41d4-a716-446655440010")
	testPassengerID = uuid.MustParse("550e8400-e29b-41d4-a716-446655440011")
	testDriverID    = uuid.MustParse("550e8400-e29b-41d4-a716-446655440012")
	testLocationID  = uuid.MustParse("550e8400-e29b-41d4-a716-446655440013")
)

func setupTripRepoTest(t *testing.T) (*TripRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewTripRepo(&models.Config{}, sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}
	return repo, mock, cleanup
}

func tripValues(status string, driverID, locationID interface{}, now time.Time) []driver.Value {
	return []driver.Value{
		testTripID.String(), "AbCd1234", nil, nil, nil,
		"Tehran", "Mashhad", "Samand", "VIP", now,
		status, "token-0123456789abcdef0123456789ab", testPassengerID.String(), driverID, locationID,
		false, false, now, now,
	}
}

func tripRows(status string, now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(tripColumnNames).AddRow(tripValues(status, nil, nil, now)...)
}

func detailColumnNames() []string {
	names := append([]string{}, tripColumnNames...)
	return append(names,
		"p_first_name", "p_last_name", "p_phone_number", "p_national_code", "p_created_at", "p_updated_at",
		"d_first_name", "d_last_name", "d_phone_number", "d_car_name", "d_created_at", "d_updated_at",
		"l_id", "l_latitude", "l_longitude", "l_text_address", "l_description", "l_phone_number", "l_geohash",
		"l_created_at", "l_updated_at",
	)
}

func detailValues(withDriver, withLocation bool, now time.Time) []driver.Value {
	var driverID, locationID interface{}
	if withDriver {
		driverID = testDriverID.String()
	}
	if withLocation {
		locationID = testLocationID.String()
	}

	values := tripValues(string(models.TripStatusWaitingInfo), driverID, locationID, now)
	values = append(values, "Ali", "Rezaei", "09123456789", nil, now, now)
	if withDriver {
		values = append(values, "Reza", "Karimi", "09351112233", "Peugeot", now, now)
	} else {
		values = append(values, nil, nil, nil, nil, nil, nil)
	}
	if withLocation {
		values = append(values, testLocationID.String(), 35.7, 51.4, "Azadi Sq", nil, nil, "tng3", now, now)
	} else {
		values = append(values, nil, nil, nil, nil, nil, nil, nil, nil, nil)
	}
	return values
}

func TestTicketCodeExists(t *testing.T) {
	repo, mock, cleanup := setupTripRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT EXISTS").
		WithArgs("AbCd1234").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.TicketCodeExists(context.Background(), "AbCd1234")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTrip(t *testing.T) {
	testCases := []struct {
		name      string
		execErr   error
		assertErr func(t *testing.T, err error)
	}{
		{
			name: "Success",
			assertErr: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:    "Duplicate ticket code",
			execErr: &pgconn.PgError{Code: "23505", ConstraintName: "trips_ticket_code_key"},
			assertErr: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, apperrors.ErrDuplicateTicketCode))
			},
		},
		{
			name:    "Duplicate secure token",
			execErr: &pgconn.PgError{Code: "23505", ConstraintName: "trips_secure_token_key"},
			assertErr: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, apperrors.ErrDuplicateEntry))
			},
		},
		{
			name:    "Database error",
			execErr: errors.New("connection refused"),
			assertErr: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to create trip")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupTripRepoTest(t)
			defer cleanup()

			expect := mock.ExpectExec("^INSERT INTO trips")
			if tc.execErr != nil {
				expect.WillReturnError(tc.execErr)
			} else {
				expect.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			trip := &models.Trip{
				TicketCode:  "AbCd1234",
				StartsAt:    time.Now(),
				Status:      models.TripStatusWaitingInfo,
				SecureToken: "token",
				PassengerID: testPassengerID,
			}
			err := repo.CreateTrip(context.Background(), trip)

			tc.assertErr(t, err)
			assert.NotEqual(t, uuid.Nil, trip.ID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetTripDetailBySecureToken(t *testing.T) {
	now := time.Now()

	t.Run("Bare trip", func(t *testing.T) {
		repo, mock, cleanup := setupTripRepoTest(t)
		defer cleanup()

		rows := sqlmock.NewRows(detailColumnNames()).AddRow(detailValues(false, false, now)...)
		mock.ExpectQuery("^SELECT (.+) FROM trips t (.+) WHERE t.secure_token").
			WithArgs("token").
			WillReturnRows(rows)

		detail, err := repo.GetTripDetailBySecureToken(context.Background(), "token")
		require.NoError(t, err)
		assert.Equal(t, testTripID, detail.ID)
		assert.Equal(t, models.TripStatusWaitingInfo, detail.Status)
		require.NotNil(t, detail.Passenger)
		assert.Equal(t, "09123456789", detail.Passenger.PhoneNumber)
		assert.Nil(t, detail.Driver)
		assert.Nil(t, detail.Location)
	})

	t.Run("With driver and location", func(t *testing.T) {
		repo, mock, cleanup := setupTripRepoTest(t)
		defer cleanup()

		rows := sqlmock.NewRows(detailColumnNames()).AddRow(detailValues(true, true, now)...)
		mock.ExpectQuery("^SELECT (.+) FROM trips t (.+) WHERE t.secure_token").
			WithArgs("token").
			WillReturnRows(rows)

		detail, err := repo.GetTripDetailBySecureToken(context.Background(), "token")
		require.NoError(t, err)
		require.NotNil(t, detail.Driver)
		assert.Equal(t, testDriverID, detail.Driver.ID)
		assert.Equal(t, "09351112233", detail.Driver.PhoneNumber)
		require.NotNil(t, detail.Location)
		assert.Equal(t, testLocationID, detail.Location.ID)
		assert.Equal(t, testTripID, detail.Location.TripID)
		assert.Equal(t, 35.7, detail.Location.Latitude)
		require.NotNil(t, detail.Location.TextAddress)
		assert.Equal(t, "Azadi Sq", *detail.Location.TextAddress)
	})

	t.Run("Not found", func(t *testing.T) {
		repo, mock, cleanup := setupTripRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("^SELECT (.+) FROM trips t").WillReturnError(sql.ErrNoRows)

		_, err := repo.GetTripDetailBySecureToken(context.Background(), "missing")
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	})
}

func TestCancelByTicketCode(t *testing.T) {
	now := time.Now()

	t.Run("Canceled", func(t *testing.T) {
		repo, mock, cleanup := setupTripRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("^UPDATE trips SET status = (.+) WHERE ticket_code = (.+) RETURNING").
			WithArgs("canceled", sqlmock.AnyArg(), "AbCd1234").
			WillReturnRows(tripRows("canceled", now))

		trip, err := repo.CancelByTicketCode(context.Background(), "AbCd1234")
		require.NoError(t, err)
		assert.Equal(t, models.TripStatusCanceled, trip.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown ticket code", func(t *testing.T) {
		repo, mock, cleanup := setupTripRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("^UPDATE trips").WillReturnError(sql.ErrNoRows)

		_, err := repo.CancelByTicketCode(context.Background(), "nope")
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	})
}

func TestUpdateStatus(t *testing.T) {
	now := time.Now()

	t.Run("Applied", func(t *testing.T) {
		repo, mock, cleanup := setupTripRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("^UPDATE trips SET status = (.+) WHERE id = (.+) AND status = (.+) RETURNING").
			WithArgs("intrip", sqlmock.AnyArg(), testTripID, "wating_start").
			WillReturnRows(tripRows("intrip", now))

		trip, err := repo.UpdateStatus(context.Background(), testTripID, models.TripStatusWaitingStart, models.TripStatusInTrip)
		require.NoError(t, err)
		assert.Equal(t, models.TripStatusInTrip, trip.Status)
	})

	t.Run("Status moved underneath", func(t *testing.T) {
		repo, mock, cleanup := setupTripRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("^UPDATE trips").WillReturnError(sql.ErrNoRows)

		_, err := repo.UpdateStatus(context.Background(), testTripID, models.TripStatusWaitingStart, models.TripStatusInTrip)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidTransition))
	})
}

func TestAssignDriver(t *testing.T) {
	testCases := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		assertErr func(t *testing.T, err error)
	}{
		{
			name: "Assigned",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE trips SET driver_id").
					WithArgs(testDriverID, sqlmock.AnyArg(), testTripID).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertErr: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Unknown trip",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE trips SET driver_id").WillReturnResult(sqlmock.NewResult(0, 0))
			},
			assertErr: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, apperrors.ErrNotFound))
				assert.Contains(t, err.Error(), "trip")
			},
		},
		{
			name: "Unknown driver",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^UPDATE trips SET driver_id").WillReturnError(&pgconn.PgError{Code: "23503"})
			},
			assertErr: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, apperrors.ErrNotFound))
				assert.Contains(t, err.Error(), "driver")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupTripRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)
			tc.assertErr(t, repo.AssignDriver(context.Background(), testTripID, testDriverID))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
