package passengers

import (
	"context"

	"github.com/google/uuid"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/mrshoofer/mrshoofer/services/passengers PassengerRepo

// PassengerRepo persists passengers keyed by canonical phone number
type PassengerRepo interface {
	// Upsert inserts the passenger or updates the row with the same phone
	// number in one statement. Blank names never overwrite stored ones.
	Upsert(ctx context.Context, passenger *models.Passenger) (*models.Passenger, error)
	// CreateIfAbsent inserts the passenger unless the phone number exists;
	// created reports which happened.
	CreateIfAbsent(ctx context.Context, passenger *models.Passenger) (result *models.Passenger, created bool, err error)
	GetByPhone(ctx context.Context, phone string) (*models.Passenger, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Passenger, error)
}
