package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/mrshoofer/mrshoofer/internal/utils"
)

var errBadSecret = apperrors.Forbidden("Invalid admin secret")

// CreateAdmin registers a console account when the admin secret matches
func (uc *AdminUC) CreateAdmin(ctx context.Context, req models.CreateAdminRequest) (*models.Admin, error) {
	if !secretMatches(uc.cfg.Admin.Secret, req.Secret) {
		logger.WarnCtx(ctx, "Admin creation rejected", logger.String("email", req.Email))
		return nil, errBadSecret
	}

	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" {
		return nil, apperrors.MissingField("name", "Name is required")
	}
	if email == "" {
		return nil, apperrors.MissingField("email", "Email is required")
	}
	if req.Password == "" {
		return nil, apperrors.MissingField("password", "Password is required")
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		IsSuperAdmin: req.IsSuperAdmin,
	}
	if req.PhoneNumber != "" {
		phone, ok := utils.NormalizeIranianMobile(req.PhoneNumber)
		if !ok {
			return nil, apperrors.InvalidPayload("Invalid phone number", nil)
		}
		admin.PhoneNumber = &phone
	}

	if err := uc.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Admin created",
		logger.String("admin_id", admin.ID.String()),
		logger.Bool("super_admin", admin.IsSuperAdmin))
	return admin, nil
}

// UpdatePassword resets an admin's password when the admin secret matches
func (uc *AdminUC) UpdatePassword(ctx context.Context, req models.UpdatePasswordRequest) error {
	if !secretMatches(uc.cfg.Admin.Secret, req.Secret) {
		logger.WarnCtx(ctx, "Admin password update rejected", logger.String("email", req.Email))
		return errBadSecret
	}
	if req.NewPassword == "" {
		return apperrors.MissingField("newPassword", "New password is required")
	}

	admin, err := uc.adminRepo.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return err
	}

	hash, err := HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := uc.adminRepo.UpdatePassword(ctx, admin.ID, hash); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Admin password updated", logger.String("admin_id", admin.ID.String()))
	return nil
}

// ListAdmins returns every console account
func (uc *AdminUC) ListAdmins(ctx context.Context) ([]*models.Admin, error) {
	return uc.adminRepo.List(ctx)
}
