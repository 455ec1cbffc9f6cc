package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
)

// SaveLocation locks the trip, upserts its location on trip_id and moves
// wating_info to wating_start. Any other status is left alone.
func (r *TripRepo) SaveLocation(ctx context.Context, token string, location *models.Location) (*models.Location, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var trip models.Trip
	query := `SELECT ` + columns(tripColumnNames, "") + ` FROM trips WHERE secure_token = $1 FOR UPDATE`
	if err := tx.GetContext(ctx, &trip, query, token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("trip")
		}
		return nil, fmt.Errorf("failed to lock trip: %w", err)
	}

	now := time.Now()
	if location.ID == uuid.Nil {
		location.ID = uuid.New()
	}
	location.TripID = trip.ID
	location.PassengerID = trip.PassengerID
	location.CreatedAt = now
	location.UpdatedAt = now

	var saved models.Location
	upsert := `
		INSERT INTO locations (` + columns(locationColumnNames, "") + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (trip_id) DO UPDATE SET
			latitude     = EXCLUDED.latitude,
			longitude    = EXCLUDED.longitude,
			text_address = EXCLUDED.text_address,
			description  = EXCLUDED.description,
			phone_number = EXCLUDED.phone_number,
			geohash      = EXCLUDED.geohash,
			updated_at   = EXCLUDED.updated_at
		RETURNING ` + columns(locationColumnNames, "")
	err = tx.GetContext(ctx, &saved, upsert,
		location.ID,
		location.TripID,
		location.PassengerID,
		location.Latitude,
		location.Longitude,
		location.TextAddress,
		location.Description,
		location.PhoneNumber,
		location.Geohash,
		location.CreatedAt,
		location.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save location: %w", err)
	}

	advance := `
		UPDATE trips SET
			location_id = $1,
			status = CASE WHEN status = $2 THEN $3 ELSE status END,
			updated_at = $4
		WHERE id = $5
	`
	if _, err := tx.ExecContext(ctx, advance, saved.ID, models.TripStatusWaitingInfo, models.TripStatusWaitingStart, now, trip.ID); err != nil {
		return nil, fmt.Errorf("failed to link location: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit location: %w", err)
	}
	return &saved, nil
}

// GetLocationByTripID returns the trip's location, or nil when none was submitted
func (r *TripRepo) GetLocationByTripID(ctx context.Context, tripID uuid.UUID) (*models.Location, error) {
	var location models.Location
	query := `SELECT ` + columns(locationColumnNames, "") + ` FROM locations WHERE trip_id = $1`
	if err := r.db.GetContext(ctx, &location, query, tripID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	return &location, nil
}
