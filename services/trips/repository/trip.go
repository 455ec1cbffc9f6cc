package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	"github.com/mrshoofer/mrshoofer/internal/pkg/database"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
)

const ticketCodeConstraint = "trips_ticket_code_key"

// TicketCodeExists reports whether any trip already uses ticketCode
func (r *TripRepo) TicketCodeExists(ctx context.Context, ticketCode string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM trips WHERE ticket_code = $1)`
	if err := r.db.GetContext(ctx, &exists, query, ticketCode); err != nil {
		return false, fmt.Errorf("failed to check ticket code: %w", err)
	}
	return exists, nil
}

// CreateTrip inserts a new trip row
func (r *TripRepo) CreateTrip(ctx context.Context, trip *models.Trip) error {
	now := time.Now()
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	trip.CreatedAt = now
	trip.UpdatedAt = now

	query := `
		INSERT INTO trips (
			id, ticket_code, trip_code, origin_id, destination_id, origin_city, destination_city,
			car_name, service_name, starts_at, status, secure_token, passenger_id,
			passenger_sms_sent, admin_approved, created_at, updated_at
		) VALUES (
			:id, :ticket_code, :trip_code, :origin_id, :destination_id, :origin_city, :destination_city,
			:car_name, :service_name, :starts_at, :status, :secure_token, :passenger_id,
			:passenger_sms_sent, :admin_approved, :created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, trip); err != nil {
		if database.IsUniqueViolation(err) {
			if database.ConstraintName(err) == ticketCodeConstraint {
				return apperrors.Conflict(apperrors.ErrDuplicateTicketCode, "Ticket code already exists")
			}
			return apperrors.Conflict(apperrors.ErrDuplicateEntry, "Duplicate entry")
		}
		return fmt.Errorf("failed to create trip: %w", err)
	}
	return nil
}

// GetTripBySecureToken retrieves the bare trip row for a secure token
func (r *TripRepo) GetTripBySecureToken(ctx context.Context, token string) (*models.Trip, error) {
	var trip models.Trip
	query := `SELECT ` + columns(tripColumnNames, "") + ` FROM trips WHERE secure_token = $1`
	if err := r.db.GetContext(ctx, &trip, query, token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("trip")
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return &trip, nil
}

// GetTripDetailByID loads a trip with its passenger, driver and location
func (r *TripRepo) GetTripDetailByID(ctx context.Context, id uuid.UUID) (*models.TripDetail, error) {
	return r.getDetail(ctx, `t.id = $1`, id)
}

// GetTripDetailBySecureToken is GetTripDetailByID keyed by secure token
func (r *TripRepo) GetTripDetailBySecureToken(ctx context.Context, token string) (*models.TripDetail, error) {
	return r.getDetail(ctx, `t.secure_token = $1`, token)
}

func (r *TripRepo) getDetail(ctx context.Context, condition string, arg interface{}) (*models.TripDetail, error) {
	var row tripDetailRow
	query := detailSelect + ` WHERE ` + condition
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("trip")
		}
		return nil, fmt.Errorf("failed to get trip detail: %w", err)
	}
	return row.detail(), nil
}

// CancelByTicketCode marks the trip canceled. Cancelling twice is not an error.
func (r *TripRepo) CancelByTicketCode(ctx context.Context, ticketCode string) (*models.Trip, error) {
	var trip models.Trip
	query := `
		UPDATE trips SET status = $1, updated_at = $2
		WHERE ticket_code = $3
		RETURNING ` + columns(tripColumnNames, "")
	if err := r.db.GetContext(ctx, &trip, query, models.TripStatusCanceled, time.Now(), ticketCode); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("trip")
		}
		return nil, fmt.Errorf("failed to cancel trip: %w", err)
	}
	return &trip, nil
}

// UpdateStatus applies a transition only if the stored status still equals from
func (r *TripRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.TripStatus) (*models.Trip, error) {
	var trip models.Trip
	query := `
		UPDATE trips SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
		RETURNING ` + columns(tripColumnNames, "")
	if err := r.db.GetContext(ctx, &trip, query, to, time.Now(), id, from); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Conflict(apperrors.ErrInvalidTransition, "Trip status changed, reload and retry")
		}
		return nil, fmt.Errorf("failed to update trip status: %w", err)
	}
	return &trip, nil
}

// AssignDriver links a driver to a trip without touching its status
func (r *TripRepo) AssignDriver(ctx context.Context, tripID, driverID uuid.UUID) error {
	query := `UPDATE trips SET driver_id = $1, updated_at = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, driverID, time.Now(), tripID)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return apperrors.NotFound("driver")
		}
		return fmt.Errorf("failed to assign driver: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read assign result: %w", err)
	}
	if affected == 0 {
		return apperrors.NotFound("trip")
	}
	return nil
}
