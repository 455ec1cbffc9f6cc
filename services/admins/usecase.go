package admins

import (
	"context"

	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/mrshoofer/mrshoofer/services/admins AdminUC

// AdminUC defines the interface for console authentication and account management
type AdminUC interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	RequestOTP(ctx context.Context, phone string) (*models.OTPIssued, error)
	VerifyOTP(ctx context.Context, phone, code string) (*models.AuthResponse, error)
	CreateAdmin(ctx context.Context, req models.CreateAdminRequest) (*models.Admin, error)
	UpdatePassword(ctx context.Context, req models.UpdatePasswordRequest) error
	ListAdmins(ctx context.Context) ([]*models.Admin, error)
}
