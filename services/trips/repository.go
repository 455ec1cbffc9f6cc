package trips

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/mrshoofer/mrshoofer/services/trips TripRepo

// TripRepo persists trips and their pickup locations
type TripRepo interface {
	TicketCodeExists(ctx context.Context, ticketCode string) (bool, error)
	// CreateTrip inserts a trip. A used ticket code is reported as
	// apperrors.ErrDuplicateTicketCode.
	CreateTrip(ctx context.Context, trip *models.Trip) error

	GetTripBySecureToken(ctx context.Context, token string) (*models.Trip, error)
	GetTripDetailByID(ctx context.Context, id uuid.UUID) (*models.TripDetail, error)
	GetTripDetailBySecureToken(ctx context.Context, token string) (*models.TripDetail, error)
	GetLocationByTripID(ctx context.Context, tripID uuid.UUID) (*models.Location, error)

	// CancelByTicketCode sets the status to canceled whatever it was
	CancelByTicketCode(ctx context.Context, ticketCode string) (*models.Trip, error)
	// SaveLocation upserts the trip's single location and advances
	// wating_info to wating_start in one transaction
	SaveLocation(ctx context.Context, token string, location *models.Location) (*models.Location, error)
	// UpdateStatus moves a trip from one status to another and fails with
	// apperrors.ErrInvalidTransition when the stored status is no longer from
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.TripStatus) (*models.Trip, error)
	AssignDriver(ctx context.Context, tripID, driverID uuid.UUID) error

	ListByStartRange(ctx context.Context, from, to time.Time) ([]*models.TripDetail, error)
	ListTrips(ctx context.Context, filter models.TripFilter) ([]*models.TripDetail, int, error)
}
