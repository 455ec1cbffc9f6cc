package admins

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/mrshoofer/mrshoofer/services/admins AdminRepo,OTPStore

// AdminRepo defines the interface for admin account persistence
type AdminRepo interface {
	GetByIdentifier(ctx context.Context, identifier string) (*models.Admin, error)
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	GetByPhone(ctx context.Context, phone string) (*models.Admin, error)
	Create(ctx context.Context, admin *models.Admin) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	List(ctx context.Context) ([]*models.Admin, error)
}

// OTPStore keeps short-lived login codes keyed by phone number
type OTPStore interface {
	// Reserve claims the resend window for phone; false means a code was
	// issued too recently
	Reserve(ctx context.Context, phone string, window time.Duration) (bool, error)
	Save(ctx context.Context, otp *models.OTP, ttl time.Duration) error
	Get(ctx context.Context, phone string) (*models.OTP, error)
	IncrAttempts(ctx context.Context, phone string, ttl time.Duration) (int, error)
	// Delete drops the code and its attempts but keeps the resend cooldown
	Delete(ctx context.Context, phone string) error
	Release(ctx context.Context, phone string) error
}
