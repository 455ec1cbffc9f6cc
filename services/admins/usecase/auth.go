package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	jwtpkg "github.com/mrshoofer/mrshoofer/internal/pkg/jwt"
	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	nrpkg "github.com/mrshoofer/mrshoofer/internal/pkg/newrelic"
	"github.com/mrshoofer/mrshoofer/internal/utils"
)

var errInvalidCredentials = apperrors.Unauthorized("Invalid credentials")

// Login checks an email-or-name and password pair and issues a session token
func (uc *AdminUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	return nrpkg.TraceUseCase(ctx, "AdminUC.Login", func(ctx context.Context) (*models.AuthResponse, error) {
		identifier := strings.TrimSpace(req.Identifier)
		if identifier == "" {
			return nil, apperrors.MissingField("identifier", "Email or name is required")
		}
		if req.Password == "" {
			return nil, apperrors.MissingField("password", "Password is required")
		}

		admin, err := uc.adminRepo.GetByIdentifier(ctx, identifier)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, errInvalidCredentials
			}
			return nil, err
		}

		ok, legacy := checkPassword(admin.PasswordHash, req.Password)
		if !ok {
			logger.WarnCtx(ctx, "Admin login rejected", logger.String("admin_id", admin.ID.String()))
			return nil, errInvalidCredentials
		}
		if legacy {
			uc.rehash(ctx, admin, req.Password)
		}

		return uc.issueSession(ctx, admin)
	})
}

// rehash replaces a plaintext password row with its bcrypt hash. Failing to
// do so does not fail the login.
func (uc *AdminUC) rehash(ctx context.Context, admin *models.Admin, password string) {
	hash, err := HashPassword(password)
	if err == nil {
		err = uc.adminRepo.UpdatePassword(ctx, admin.ID, hash)
	}
	if err != nil {
		logger.WarnCtx(ctx, "Failed to rehash legacy admin password",
			logger.String("admin_id", admin.ID.String()),
			logger.ErrorField(err))
		return
	}
	logger.InfoCtx(ctx, "Legacy admin password rehashed", logger.String("admin_id", admin.ID.String()))
}

// RequestOTP sends a login code to an admin's phone
func (uc *AdminUC) RequestOTP(ctx context.Context, phone string) (*models.OTPIssued, error) {
	return nrpkg.TraceUseCase(ctx, "AdminUC.RequestOTP", func(ctx context.Context) (*models.OTPIssued, error) {
		normalized, ok := utils.NormalizeIranianMobile(phone)
		if !ok {
			return nil, apperrors.InvalidPayload("Invalid phone number", nil)
		}

		if _, err := uc.adminRepo.GetByPhone(ctx, normalized); err != nil {
			return nil, err
		}

		policy := uc.cfg.Admin
		reserved, err := uc.otpStore.Reserve(ctx, normalized, policy.OTPResendWindow)
		if err != nil {
			return nil, err
		}
		if !reserved {
			return nil, apperrors.Conflict(apperrors.ErrRateLimited, "A code was sent recently, please wait before requesting another")
		}

		code, err := uc.randomCode(policy.OTPLength)
		if err != nil {
			return nil, fmt.Errorf("failed to generate otp: %w", err)
		}

		now := uc.now()
		otp := &models.OTP{
			Phone:     normalized,
			Code:      code,
			CreatedAt: now,
			ExpiresAt: now.Add(policy.OTPTTL),
		}
		if err := uc.otpStore.Save(ctx, otp, policy.OTPTTL); err != nil {
			return nil, err
		}

		err = uc.notificationUC.Dispatch(ctx, &models.Notification{
			Kind:  models.NotificationAdminOTP,
			Phone: normalized,
			Code:  code,
		})
		if err != nil {
			logger.ErrorCtx(ctx, "Failed to send admin otp",
				logger.String("phone", utils.MaskPhoneNumber(normalized)),
				logger.ErrorField(err))
			if delErr := uc.otpStore.Delete(ctx, normalized); delErr != nil {
				logger.WarnCtx(ctx, "Failed to clear unsent otp", logger.ErrorField(delErr))
			}
			if relErr := uc.otpStore.Release(ctx, normalized); relErr != nil {
				logger.WarnCtx(ctx, "Failed to release otp window", logger.ErrorField(relErr))
			}
			return nil, fmt.Errorf("failed to send otp: %w", err)
		}

		logger.InfoCtx(ctx, "Admin otp sent", logger.String("phone", utils.MaskPhoneNumber(normalized)))
		return &models.OTPIssued{
			Phone:     normalized,
			ExpiresAt: otp.ExpiresAt,
			ResendIn:  int(policy.OTPResendWindow.Seconds()),
		}, nil
	})
}

// VerifyOTP exchanges a code for a session token. The code is burned after
// too many wrong guesses.
func (uc *AdminUC) VerifyOTP(ctx context.Context, phone, code string) (*models.AuthResponse, error) {
	return nrpkg.TraceUseCase(ctx, "AdminUC.VerifyOTP", func(ctx context.Context) (*models.AuthResponse, error) {
		normalized, ok := utils.NormalizeIranianMobile(phone)
		if !ok {
			return nil, apperrors.InvalidPayload("Invalid phone number", nil)
		}
		code = strings.TrimSpace(code)
		if code == "" {
			return nil, apperrors.MissingField("code", "Code is required")
		}

		otp, err := uc.otpStore.Get(ctx, normalized)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.Unauthorized("Invalid or expired code")
			}
			return nil, err
		}

		maxAttempts := uc.cfg.Admin.OTPMaxAttempts
		if otp.Attempts >= maxAttempts {
			uc.burn(ctx, normalized)
			return nil, apperrors.Conflict(apperrors.ErrRateLimited, "Too many attempts, request a new code")
		}

		if subtle.ConstantTimeCompare([]byte(otp.Code), []byte(code)) != 1 {
			remaining := otp.ExpiresAt.Sub(uc.now())
			if remaining <= 0 {
				remaining = uc.cfg.Admin.OTPTTL
			}
			attempts, err := uc.otpStore.IncrAttempts(ctx, normalized, remaining)
			if err != nil {
				return nil, err
			}
			if attempts >= maxAttempts {
				uc.burn(ctx, normalized)
			}
			return nil, apperrors.Unauthorized("Invalid or expired code")
		}

		uc.burn(ctx, normalized)

		admin, err := uc.adminRepo.GetByPhone(ctx, normalized)
		if err != nil {
			return nil, err
		}
		return uc.issueSession(ctx, admin)
	})
}

func (uc *AdminUC) burn(ctx context.Context, phone string) {
	if err := uc.otpStore.Delete(ctx, phone); err != nil {
		logger.WarnCtx(ctx, "Failed to delete otp", logger.ErrorField(err))
	}
}

func (uc *AdminUC) issueSession(ctx context.Context, admin *models.Admin) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(admin, uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	nrpkg.AddAttribute(ctx, "admin.id", admin.ID.String())
	logger.InfoCtx(ctx, "Admin session issued", logger.String("admin_id", admin.ID.String()))

	return &models.AuthResponse{
		Token:        token,
		AdminID:      admin.ID.String(),
		Name:         admin.Name,
		IsSuperAdmin: admin.IsSuperAdmin,
		ExpiresAt:    expiresAt,
	}, nil
}
