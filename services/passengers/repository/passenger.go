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

const passengerColumns = `id, first_name, last_name, phone_number, national_code, created_at, updated_at`

// Upsert inserts or refreshes the passenger with the same phone number.
// A unique violation that escapes the ON CONFLICT clause is answered with a
// lookup by phone.
func (r *PassengerRepo) Upsert(ctx context.Context, passenger *models.Passenger) (*models.Passenger, error) {
	now := time.Now()
	if passenger.ID == uuid.Nil {
		passenger.ID = uuid.New()
	}
	passenger.CreatedAt = now
	passenger.UpdatedAt = now

	query := `
		INSERT INTO passengers (id, first_name, last_name, phone_number, national_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (phone_number) DO UPDATE SET
			first_name    = COALESCE(NULLIF(EXCLUDED.first_name, ''), passengers.first_name),
			last_name     = COALESCE(NULLIF(EXCLUDED.last_name, ''), passengers.last_name),
			national_code = COALESCE(NULLIF(EXCLUDED.national_code, ''), passengers.national_code),
			updated_at    = EXCLUDED.updated_at
		RETURNING ` + passengerColumns

	var result models.Passenger
	err := r.db.GetContext(ctx, &result, query,
		passenger.ID,
		passenger.FirstName,
		passenger.LastName,
		passenger.PhoneNumber,
		passenger.NationalCode,
		passenger.CreatedAt,
		passenger.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return r.GetByPhone(ctx, passenger.PhoneNumber)
		}
		return nil, fmt.Errorf("failed to upsert passenger: %w", err)
	}

	return &result, nil
}

// CreateIfAbsent inserts the passenger unless its phone number is taken
func (r *PassengerRepo) CreateIfAbsent(ctx context.Context, passenger *models.Passenger) (*models.Passenger, bool, error) {
	now := time.Now()
	if passenger.ID == uuid.Nil {
		passenger.ID = uuid.New()
	}
	passenger.CreatedAt = now
	passenger.UpdatedAt = now

	query := `
		INSERT INTO passengers (id, first_name, last_name, phone_number, national_code, created_at, updated_at)
		VALUES (:id, :first_name, :last_name, :phone_number, :national_code, :created_at, :updated_at)
		ON CONFLICT (phone_number) DO NOTHING
	`
	res, err := r.db.NamedExecContext(ctx, query, passenger)
	if err != nil {
		return nil, false, fmt.Errorf("failed to insert passenger: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, false, fmt.Errorf("failed to read insert result: %w", err)
	}
	if affected == 1 {
		return passenger, true, nil
	}

	existing, err := r.GetByPhone(ctx, passenger.PhoneNumber)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// GetByPhone retrieves a passenger by canonical phone number
func (r *PassengerRepo) GetByPhone(ctx context.Context, phone string) (*models.Passenger, error) {
	var passenger models.Passenger
	query := `SELECT ` + passengerColumns + ` FROM passengers WHERE phone_number = $1`
	if err := r.db.GetContext(ctx, &passenger, query, phone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("passenger")
		}
		return nil, fmt.Errorf("failed to get passenger: %w", err)
	}
	return &passenger, nil
}

// GetByID retrieves a passenger by id
func (r *PassengerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Passenger, error) {
	var passenger models.Passenger
	query := `SELECT ` + passengerColumns + ` FROM passengers WHERE id = $1`
	if err := r.db.GetContext(ctx, &passenger, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("passenger")
		}
		return nil, fmt.Errorf("failed to get passenger: %w", err)
	}
	return &passenger, nil
}
