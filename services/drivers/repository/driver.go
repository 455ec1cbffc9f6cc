package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
)

const driverColumns = `id, first_name, last_name, phone_number, car_name, created_at, updated_at`

// List returns drivers, newest first
func (r *DriverRepo) List(ctx context.Context, search string) ([]*models.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers`
	var args []interface{}

	if search = strings.TrimSpace(search); search != "" {
		query += ` WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR phone_number LIKE $1 OR car_name ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY created_at DESC, id DESC`

	drivers := []*models.Driver{}
	if err := r.db.SelectContext(ctx, &drivers, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	return drivers, nil
}

// GetByID retrieves a driver by ID
func (r *DriverRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE id = $1`

	var driver models.Driver
	if err := r.db.GetContext(ctx, &driver, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("driver")
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return &driver, nil
}

// Create inserts a new driver
func (r *DriverRepo) Create(ctx context.Context, driver *models.Driver) error {
	now := time.Now()
	if driver.ID == uuid.Nil {
		driver.ID = uuid.New()
	}
	driver.CreatedAt = now
	driver.UpdatedAt = now

	query := `
		INSERT INTO drivers (id, first_name, last_name, phone_number, car_name, created_at, updated_at)
		VALUES (:id, :first_name, :last_name, :phone_number, :car_name, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, driver); err != nil {
		return fmt.Errorf("failed to create driver: %w", err)
	}
	return nil
}

// Update overwrites the editable fields of a driver
func (r *DriverRepo) Update(ctx context.Context, driver *models.Driver) (*models.Driver, error) {
	query := `
		UPDATE drivers
		SET first_name = $1, last_name = $2, phone_number = $3, car_name = $4, updated_at = $5
		WHERE id = $6
		RETURNING ` + driverColumns

	var updated models.Driver
	err := r.db.GetContext(ctx, &updated, query,
		driver.FirstName,
		driver.LastName,
		driver.PhoneNumber,
		driver.CarName,
		time.Now(),
		driver.ID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("driver")
		}
		return nil, fmt.Errorf("failed to update driver: %w", err)
	}
	return &updated, nil
}

// Delete removes a driver. Trips assigned to it keep running unassigned.
func (r *DriverRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM drivers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete driver: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("driver")
	}
	return nil
}
