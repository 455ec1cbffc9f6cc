package drivers

import (
	"context"

	"github.com/google/uuid"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/mrshoofer/mrshoofer/services/drivers DriverUC

// DriverUC manages drivers from the admin console
type DriverUC interface {
	ListDrivers(ctx context.Context, search string) ([]*models.Driver, error)
	GetDriver(ctx context.Context, id uuid.UUID) (*models.Driver, error)
	CreateDriver(ctx context.Context, req models.DriverRequest) (*models.Driver, error)
	UpdateDriver(ctx context.Context, id uuid.UUID, req models.DriverRequest) (*models.Driver, error)
	DeleteDriver(ctx context.Context, id uuid.UUID) error
}
