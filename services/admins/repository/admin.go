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

const adminColumns = `id, name, email, phone_number, password, is_super_admin, created_at, updated_at`

// GetByIdentifier finds an admin by email (case-insensitive) or exact name
func (r *AdminRepo) GetByIdentifier(ctx context.Context, identifier string) (*models.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins
		WHERE lower(email) = lower($1) OR name = $1
		ORDER BY created_at
		LIMIT 1`
	return r.getOne(ctx, query, identifier)
}

// GetByEmail finds an admin by email, ignoring case
func (r *AdminRepo) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE lower(email) = lower($1)`
	return r.getOne(ctx, query, email)
}

// GetByPhone finds the admin owning a normalized phone number
func (r *AdminRepo) GetByPhone(ctx context.Context, phone string) (*models.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE phone_number = $1 LIMIT 1`
	return r.getOne(ctx, query, phone)
}

func (r *AdminRepo) getOne(ctx context.Context, query string, arg interface{}) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.GetContext(ctx, &admin, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("admin")
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return &admin, nil
}

// Create inserts a new admin; a taken email is a duplicate entry
func (r *AdminRepo) Create(ctx context.Context, admin *models.Admin) error {
	now := time.Now()
	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}
	admin.CreatedAt = now
	admin.UpdatedAt = now

	query := `
		INSERT INTO admins (id, name, email, phone_number, password, is_super_admin, created_at, updated_at)
		VALUES (:id, :name, :email, :phone_number, :password, :is_super_admin, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, admin); err != nil {
		if database.IsUniqueViolation(err) {
			return apperrors.Conflict(apperrors.ErrDuplicateEntry, "An admin with this email already exists")
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

// UpdatePassword stores a new password hash
func (r *AdminRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE admins SET password = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, passwordHash, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update admin password: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update admin password: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("admin")
	}
	return nil
}

// List returns every admin, oldest first
func (r *AdminRepo) List(ctx context.Context) ([]*models.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins ORDER BY created_at, id`

	admins := []*models.Admin{}
	if err := r.db.SelectContext(ctx, &admins, query); err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	return admins, nil
}
