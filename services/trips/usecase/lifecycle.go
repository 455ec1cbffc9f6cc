package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/mrshoofer/mrshoofer/internal/utils"
)

// CancelTrip cancels the trip with ticketCode whatever its status. An
// assigned driver is told about it.
func (uc *TripUC) CancelTrip(ctx context.Context, ticketCode string) error {
	ticketCode = strings.TrimSpace(ticketCode)
	if ticketCode == "" {
		return apperrors.MissingField("ticketCode", "Ticket code is required")
	}

	trip, err := uc.tripRepo.CancelByTicketCode(ctx, ticketCode)
	if err != nil {
		return err
	}
	logger.InfoCtx(ctx, "Trip canceled",
		logger.String("trip_id", trip.ID.String()),
		logger.String("ticket_code", ticketCode))

	if trip.DriverID != nil {
		uc.notifyDriver(ctx, models.NotificationDriverTripCanceled, trip.ID)
	}
	return nil
}

// GetTripByToken returns the trip a secure token grants access to
func (uc *TripUC) GetTripByToken(ctx context.Context, token string) (*models.TripDetail, error) {
	if strings.TrimSpace(token) == "" {
		return nil, apperrors.NotFound("trip")
	}
	return uc.tripRepo.GetTripDetailBySecureToken(ctx, token)
}

// GetTripLocation returns the trip and its location, which may be nil
func (uc *TripUC) GetTripLocation(ctx context.Context, token string) (*models.TripLocationView, error) {
	detail, err := uc.GetTripByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	trip := detail.Trip
	return &models.TripLocationView{Location: detail.Location, Trip: &trip}, nil
}

// SubmitLocation records the passenger pickup point for the trip. Repeated
// submissions update the same row and never move the status backwards.
func (uc *TripUC) SubmitLocation(ctx context.Context, token string, input models.LocationInput) (*models.LocationResult, error) {
	if !utils.ValidCoordinates(input.Latitude, input.Longitude) {
		return nil, apperrors.InvalidPayload("Latitude or longitude out of range", nil)
	}

	location := &models.Location{
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		TextAddress: optional(input.TextAddress),
		Description: optional(input.Description),
		PhoneNumber: optional(input.PhoneNumber),
		Geohash:     utils.EncodeLocation(input.Latitude, input.Longitude, utils.GeohashPrecision),
	}

	saved, err := uc.tripRepo.SaveLocation(ctx, token, location)
	if err != nil {
		return nil, err
	}

	detail, err := uc.tripRepo.GetTripDetailByID(ctx, saved.TripID)
	if err != nil {
		return nil, err
	}
	logger.InfoCtx(ctx, "Trip location saved",
		logger.String("trip_id", detail.ID.String()),
		logger.String("status", string(detail.Status)),
		logger.String("geohash", saved.Geohash))

	if detail.Driver != nil {
		uc.notify(ctx, driverNotification(models.NotificationDriverLocationAdded, detail))
	}
	return &models.LocationResult{Location: saved, Trip: detail}, nil
}

// UpdateStatus applies an admin status change if CanTransition allows it
func (uc *TripUC) UpdateStatus(ctx context.Context, id uuid.UUID, status models.TripStatus) (*models.Trip, error) {
	if !status.Valid() {
		return nil, apperrors.InvalidPayload("Unknown trip status "+string(status), nil)
	}

	current, err := uc.tripRepo.GetTripDetailByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(current.Status, status) {
		return nil, apperrors.Conflict(apperrors.ErrInvalidTransition,
			"Cannot move trip from "+string(current.Status)+" to "+string(status))
	}

	trip, err := uc.tripRepo.UpdateStatus(ctx, id, current.Status, status)
	if err != nil {
		return nil, err
	}
	logger.InfoCtx(ctx, "Trip status updated",
		logger.String("trip_id", id.String()),
		logger.String("from", string(current.Status)),
		logger.String("to", string(status)))

	if status == models.TripStatusCanceled && current.Driver != nil {
		uc.notify(ctx, driverNotification(models.NotificationDriverTripCanceled, current))
	}
	return trip, nil
}

// AssignDriver links a driver to the trip and tells the driver. The status
// is not changed.
func (uc *TripUC) AssignDriver(ctx context.Context, tripID, driverID uuid.UUID) (*models.TripDetail, error) {
	if err := uc.tripRepo.AssignDriver(ctx, tripID, driverID); err != nil {
		return nil, err
	}

	detail, err := uc.tripRepo.GetTripDetailByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	logger.InfoCtx(ctx, "Driver assigned",
		logger.String("trip_id", tripID.String()),
		logger.String("driver_id", driverID.String()))

	if detail.Driver != nil {
		uc.notify(ctx, driverNotification(models.NotificationDriverAssigned, detail))
	}
	return detail, nil
}

func (uc *TripUC) notifyDriver(ctx context.Context, kind models.NotificationKind, tripID uuid.UUID) {
	detail, err := uc.tripRepo.GetTripDetailByID(ctx, tripID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load trip for driver notification",
			logger.String("trip_id", tripID.String()),
			logger.ErrorField(err))
		return
	}
	if detail.Driver == nil {
		return
	}
	uc.notify(ctx, driverNotification(kind, detail))
}
