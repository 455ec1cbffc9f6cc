package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var driverRowColumns = []string{"id", "first_name", "last_name", "phone_number", "car_name", "created_at", "updated_at"}

func setupDriverRepoTest(t *testing.T) (*DriverRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })
	return NewDriverRepo(&models.Config{}, sqlxDB), mock
}

func TestList(t *testing.T) {
	now := time.Now()
	id := uuid.New()

	t.Run("All drivers", func(t *testing.T) {
		repo, mock := setupDriverRepoTest(t)
		mock.ExpectQuery(`SELECT (.+) FROM drivers ORDER BY created_at DESC, id DESC`).
			WillReturnRows(sqlmock.NewRows(driverRowColumns).
				AddRow(id.String(), "Reza", "Karimi", "09351112233", "Samand", now, now))

		drivers, err := repo.List(context.Background(), "")
		require.NoError(t, err)
		require.Len(t, drivers, 1)
		assert.Equal(t, id, drivers[0].ID)
		assert.Equal(t, "Samand", drivers[0].CarName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Search", func(t *testing.T) {
		repo, mock := setupDriverRepoTest(t)
		mock.ExpectQuery(`SELECT (.+) FROM drivers WHERE first_name ILIKE \$1 OR last_name ILIKE \$1 OR phone_number LIKE \$1 OR car_name ILIKE \$1`).
			WithArgs("%rez%").
			WillReturnRows(sqlmock.NewRows(driverRowColumns))

		drivers, err := repo.List(context.Background(), " rez ")
		require.NoError(t, err)
		assert.Empty(t, drivers)
		assert.NotNil(t, drivers)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		repo, mock := setupDriverRepoTest(t)
		mock.ExpectQuery(`SELECT (.+) FROM drivers`).WillReturnError(errors.New("db down"))

		_, err := repo.List(context.Background(), "")
		assert.ErrorContains(t, err, "failed to list drivers")
	})
}

func TestGetByID(t *testing.T) {
	repo, mock := setupDriverRepoTest(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM drivers WHERE id = \$1`).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), id)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	repo, mock := setupDriverRepoTest(t)
	driver := &models.Driver{FirstName: "Reza", LastName: "Karimi", PhoneNumber: "09351112233", CarName: "Samand"}

	mock.ExpectExec(`INSERT INTO drivers`).
		WithArgs(sqlmock.AnyArg(), "Reza", "Karimi", "09351112233", "Samand", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), driver))
	assert.NotEqual(t, uuid.Nil, driver.ID)
	assert.False(t, driver.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	id := uuid.New()
	now := time.Now()

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, driver *models.Driver, err error)
	}{
		{
			name: "Updated",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE drivers SET (.+) WHERE id = \$6 RETURNING`).
					WithArgs("Reza", "Karimi", "09351112233", "Peugeot", sqlmock.AnyArg(), id).
					WillReturnRows(sqlmock.NewRows(driverRowColumns).
						AddRow(id.String(), "Reza", "Karimi", "09351112233", "Peugeot", now, now))
			},
			assertFunc: func(t *testing.T, driver *models.Driver, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Peugeot", driver.CarName)
			},
		},
		{
			name: "Unknown driver",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE drivers`).WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, driver *models.Driver, err error) {
				assert.Nil(t, driver)
				assert.True(t, errors.Is(err, apperrors.ErrNotFound))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := setupDriverRepoTest(t)
			tc.mockSetup(mock)

			driver, err := repo.Update(context.Background(), &models.Driver{
				ID: id, FirstName: "Reza", LastName: "Karimi", PhoneNumber: "09351112233", CarName: "Peugeot",
			})
			tc.assertFunc(t, driver, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDelete(t *testing.T) {
	id := uuid.New()

	t.Run("Deleted", func(t *testing.T) {
		repo, mock := setupDriverRepoTest(t)
		mock.ExpectExec(`DELETE FROM drivers WHERE id = \$1`).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
		assert.NoError(t, repo.Delete(context.Background(), id))
	})

	t.Run("Unknown driver", func(t *testing.T) {
		repo, mock := setupDriverRepoTest(t)
		mock.ExpectExec(`DELETE FROM drivers`).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))
		assert.True(t, errors.Is(repo.Delete(context.Background(), id), apperrors.ErrNotFound))
	})
}
