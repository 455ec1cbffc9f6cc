package trips

import (
	"context"

	"github.com/google/uuid"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/mrshoofer/mrshoofer/services/trips TripUC

// TripUC implements the trip lifecycle
type TripUC interface {
	CreateTrip(ctx context.Context, req models.CreateTripRequest) (*models.CreateTripResponse, error)
	CancelTrip(ctx context.Context, ticketCode string) error

	GetTripByToken(ctx context.Context, token string) (*models.TripDetail, error)
	GetTripLocation(ctx context.Context, token string) (*models.TripLocationView, error)
	SubmitLocation(ctx context.Context, token string, input models.LocationInput) (*models.LocationResult, error)
	Estimate(ctx context.Context, req models.EstimateRequest) (*models.Estimate, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status models.TripStatus) (*models.Trip, error)
	AssignDriver(ctx context.Context, tripID, driverID uuid.UUID) (*models.TripDetail, error)
	ListUpcomings(ctx context.Context, day string) ([]*models.TripDetail, error)
	ListTrips(ctx context.Context, filter models.TripFilter) (*models.TripPage, error)
}
