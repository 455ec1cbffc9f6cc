package drivers

import (
	"context"

	"github.com/google/uuid"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/mrshoofer/mrshoofer/services/drivers DriverRepo

// DriverRepo persists drivers
type DriverRepo interface {
	// List returns drivers newest first; a non-empty search matches any
	// name, phone or car substring
	List(ctx context.Context, search string) ([]*models.Driver, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Driver, error)
	Create(ctx context.Context, driver *models.Driver) error
	Update(ctx context.Context, driver *models.Driver) (*models.Driver, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
