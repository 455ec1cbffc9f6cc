package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListByStartRange(t *testing.T) {
	repo, mock, cleanup := setupTripRepoTest(t)
	defer cleanup()

	now := time.Now()
	from := now.Truncate(24 * time.Hour)
	to := from.Add(24 * time.Hour)

	rows := sqlmock.NewRows(detailColumnNames()).
		AddRow(detailValues(true, false, now)...)
	mock.ExpectQuery("^SELECT (.+) WHERE t.starts_at >= \\$1 AND t.starts_at < \\$2 ORDER BY t.starts_at ASC").
		WithArgs(from, to).
		WillReturnRows(rows)

	trips, err := repo.ListByStartRange(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.NotNil(t, trips[0].Driver)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTrips(t *testing.T) {
	t.Run("Filtered page", func(t *testing.T) {
		repo, mock, cleanup := setupTripRepoTest(t)
		defer cleanup()

		now := time.Now()
		filter := models.TripFilter{Page: 2, PageSize: 5, Search: "Ali", Status: models.TripStatusWaitingInfo, Driver: "unassigned"}

		mock.ExpectQuery("^SELECT COUNT\\(\\*\\) FROM trips t (.+) WHERE (.+) ILIKE \\$1 (.+) t.driver_id IS NULL AND t.status = \\$2").
			WithArgs("%Ali%", "wating_info").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))
		mock.ExpectQuery("^SELECT (.+) ORDER BY t.starts_at DESC, t.id DESC LIMIT \\$3 OFFSET \\$4").
			WithArgs("%Ali%", "wating_info", 5, 5).
			WillReturnRows(sqlmock.NewRows(detailColumnNames()).AddRow(detailValues(false, false, now)...))

		trips, total, err := repo.ListTrips(context.Background(), filter)
		require.NoError(t, err)
		assert.Equal(t, 6, total)
		assert.Len(t, trips, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No matches skips page query", func(t *testing.T) {
		repo, mock, cleanup := setupTripRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("^SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		trips, total, err := repo.ListTrips(context.Background(), models.TripFilter{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.Empty(t, trips)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTripFilterClause(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	where, args := tripFilterClause(models.TripFilter{Location: "assigned", DateFrom: &from})
	assert.Equal(t, " WHERE t.location_id IS NOT NULL AND t.starts_at >= $1", where)
	assert.Equal(t, []interface{}{from}, args)

	where, args = tripFilterClause(models.TripFilter{Driver: "all"})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestTripOrder(t *testing.T) {
	assert.Equal(t, "t.starts_at DESC, t.id DESC", tripOrder(models.TripFilter{}))
	assert.Equal(t, "t.ticket_code ASC, t.id ASC", tripOrder(models.TripFilter{SortBy: "TicketCode", SortOrder: "asc"}))
	assert.Equal(t, "t.starts_at DESC, t.id DESC", tripOrder(models.TripFilter{SortBy: "password; DROP TABLE"}))
}
