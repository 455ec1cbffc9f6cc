package passengers

import (
	"context"

	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/mrshoofer/mrshoofer/services/passengers PassengerUC

// PassengerUC resolves partner-supplied passengers
type PassengerUC interface {
	// Resolve returns the passenger for input's phone, creating it or
	// refreshing its names as needed
	Resolve(ctx context.Context, input models.PassengerInput) (*models.Passenger, error)
	// Register creates the passenger if absent and leaves an existing one untouched
	Register(ctx context.Context, input models.PassengerInput) (*models.RegisterResult, error)
	Lookup(ctx context.Context, phone string) (*models.Passenger, error)
}
