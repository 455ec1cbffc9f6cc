package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
)

var sortColumns = map[string]string{
	"startsat":   "t.starts_at",
	"ticketcode": "t.ticket_code",
	"createdat":  "t.created_at",
	"id":         "t.created_at",
	"status":     "t.status",
}

// ListByStartRange returns trips starting in [from, to) ordered by start time
func (r *TripRepo) ListByStartRange(ctx context.Context, from, to time.Time) ([]*models.TripDetail, error) {
	var rows []tripDetailRow
	query := detailSelect + ` WHERE t.starts_at >= $1 AND t.starts_at < $2 ORDER BY t.starts_at ASC`
	if err := r.db.SelectContext(ctx, &rows, query, from, to); err != nil {
		return nil, fmt.Errorf("failed to list trips by start time: %w", err)
	}
	return details(rows), nil
}

// ListTrips returns one filtered page of trips and the total match count.
// filter.Page and filter.PageSize must already be positive.
func (r *TripRepo) ListTrips(ctx context.Context, filter models.TripFilter) ([]*models.TripDetail, int, error) {
	where, args := tripFilterClause(filter)

	var total int
	countQuery := `SELECT COUNT(*)` + detailJoins + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count trips: %w", err)
	}
	if total == 0 {
		return []*models.TripDetail{}, 0, nil
	}

	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)
	query := fmt.Sprintf(`%s%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		detailSelect, where, tripOrder(filter), len(args)-1, len(args))

	var rows []tripDetailRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list trips: %w", err)
	}
	return details(rows), total, nil
}

func tripFilterClause(filter models.TripFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}
	next := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		p := next("%" + search + "%")
		conditions = append(conditions, fmt.Sprintf(`(t.ticket_code ILIKE %[1]s OR t.trip_code ILIKE %[1]s
			OR p.first_name ILIKE %[1]s OR p.last_name ILIKE %[1]s OR p.phone_number LIKE %[1]s
			OR d.first_name ILIKE %[1]s OR d.last_name ILIKE %[1]s)`, p))
	}

	switch filter.Driver {
	case "assigned":
		conditions = append(conditions, "t.driver_id IS NOT NULL")
	case "unassigned":
		conditions = append(conditions, "t.driver_id IS NULL")
	}

	switch filter.Location {
	case "assigned":
		conditions = append(conditions, "t.location_id IS NOT NULL")
	case "unassigned":
		conditions = append(conditions, "t.location_id IS NULL")
	}

	if filter.Status != "" {
		conditions = append(conditions, "t.status = "+next(string(filter.Status)))
	}
	if filter.DateFrom != nil {
		conditions = append(conditions, "t.starts_at >= "+next(*filter.DateFrom))
	}
	if filter.DateTo != nil {
		conditions = append(conditions, "t.starts_at <= "+next(*filter.DateTo))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func tripOrder(filter models.TripFilter) string {
	column, ok := sortColumns[strings.ToLower(filter.SortBy)]
	if !ok {
		column = "t.starts_at"
	}
	direction := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		direction = "ASC"
	}
	return column + " " + direction + ", t.id " + direction
}
