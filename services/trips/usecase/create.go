package usecase

import (
	"context"
	"strings"

	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	nrpkg "github.com/mrshoofer/mrshoofer/internal/pkg/newrelic"
)

// CreateTrip books a partner trip. The passenger is upserted by phone, the
// trip starts in wating_info and the passenger SMS is queued without
// affecting the result.
func (uc *TripUC) CreateTrip(ctx context.Context, req models.CreateTripRequest) (*models.CreateTripResponse, error) {
	return nrpkg.TraceUseCase(ctx, "TripUC.CreateTrip", func(ctx context.Context) (*models.CreateTripResponse, error) {
		return uc.createTrip(ctx, req)
	})
}

func (uc *TripUC) createTrip(ctx context.Context, req models.CreateTripRequest) (*models.CreateTripResponse, error) {
	if strings.TrimSpace(req.Passenger.PhoneNumber) == "" {
		return nil, apperrors.MissingField("passenger.NumberPhone", "Passenger phone number is required")
	}
	if req.Trip.StartsAt.IsZero() {
		return nil, apperrors.MissingField("trip.StartsAt", "Trip start time is required")
	}

	ticketCode := strings.TrimSpace(req.Trip.TicketCode)
	if ticketCode != "" {
		exists, err := uc.tripRepo.TicketCodeExists(ctx, ticketCode)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.Conflict(apperrors.ErrDuplicateTicketCode, "Ticket code "+ticketCode+" is already in use")
		}
	}

	passenger, err := uc.passengerUC.Resolve(ctx, req.Passenger)
	if err != nil {
		return nil, err
	}

	if ticketCode == "" {
		ticketCode, err = uc.allocateTicketCode(ctx)
		if err != nil {
			return nil, err
		}
	}

	token, err := uc.newSecureToken()
	if err != nil {
		return nil, err
	}

	trip := &models.Trip{
		TicketCode:       ticketCode,
		TripCode:         optional(req.Trip.TripCode),
		OriginID:         optional(req.Trip.OriginID),
		DestinationID:    optional(req.Trip.DestinationID),
		OriginCity:       req.Trip.OriginCity,
		DestinationCity:  req.Trip.DestinationCity,
		CarName:          req.Trip.CarName,
		ServiceName:      req.Trip.ServiceName,
		StartsAt:         req.Trip.StartsAt.UTC(),
		Status:           models.TripStatusWaitingInfo,
		SecureToken:      token,
		PassengerID:      passenger.ID,
		PassengerSmsSent: false,
		AdminApproved:    false,
	}
	if err := uc.tripRepo.CreateTrip(ctx, trip); err != nil {
		logger.ErrorCtx(ctx, "Failed to create trip",
			logger.String("ticket_code", ticketCode),
			logger.ErrorField(err))
		return nil, err
	}

	nrpkg.AddAttribute(ctx, "trip.ticket_code", trip.TicketCode)
	logger.InfoCtx(ctx, "Trip created",
		logger.String("trip_id", trip.ID.String()),
		logger.String("ticket_code", trip.TicketCode),
		logger.String("passenger_id", passenger.ID.String()))

	uc.notify(ctx, &models.Notification{
		Kind:            models.NotificationPassengerTripCreated,
		Phone:           passenger.PhoneNumber,
		TripID:          trip.ID,
		FirstName:       passenger.FirstName,
		LastName:        passenger.LastName,
		OriginCity:      trip.OriginCity,
		DestinationCity: trip.DestinationCity,
		TicketCode:      trip.TicketCode,
		SecureToken:     trip.SecureToken,
		StartsAt:        trip.StartsAt,
	})

	return &models.CreateTripResponse{Trip: trip, Passenger: passenger}, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
