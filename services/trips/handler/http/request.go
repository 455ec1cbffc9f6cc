package http

import (
	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/mrshoofer/mrshoofer/internal/utils"
	passengerhttp "github.com/mrshoofer/mrshoofer/services/passengers/handler/http"
)

// createTripRequestFrom extracts the partner create-trip body. Keys may
// arrive in any case.
func createTripRequestFrom(body map[string]interface{}) (models.CreateTripRequest, error) {
	passenger := utils.ObjectField(body, "passenger", "Passenger")
	trip := utils.ObjectField(body, "trip", "Trip")
	if passenger == nil || trip == nil {
		return models.CreateTripRequest{}, apperrors.InvalidPayload("Missing passenger or trip object", nil)
	}

	input := models.TripInput{
		TicketCode:      utils.StringField(trip, "TicketCode", "ticketCode", "ticketcode"),
		TripCode:        utils.StringField(trip, "TripCode", "tripCode", "tripcode"),
		OriginID:        utils.StringField(trip, "Origin_id", "origin_id", "originId"),
		DestinationID:   utils.StringField(trip, "Destination_id", "destination_id", "destinationId"),
		OriginCity:      utils.StringField(trip, "OriginCity", "originCity", "origincity"),
		DestinationCity: utils.StringField(trip, "DestinationCity", "destinationCity", "destinationcity"),
		CarName:         utils.StringField(trip, "CarName", "carName", "carname"),
		ServiceName:     utils.StringField(trip, "ServiceName", "serviceName", "servicename"),
	}

	if raw := utils.StringField(trip, "StartsAt", "startsAt", "startsat"); raw != "" {
		startsAt, err := utils.ParsePartnerTime(raw)
		if err != nil {
			return models.CreateTripRequest{}, apperrors.InvalidPayload("Invalid trip.StartsAt", err)
		}
		input.StartsAt = startsAt
	}

	return models.CreateTripRequest{
		Passenger: passengerhttp.PassengerInputFrom(passenger),
		Trip:      input,
	}, nil
}

// locationInputFrom extracts a location submission. Coordinates may be
// numbers or numeric strings.
func locationInputFrom(body map[string]interface{}) (models.LocationInput, error) {
	lat, latPresent, latOK := utils.FloatField(body, "lat", "latitude", "Latitude")
	lon, lonPresent, lonOK := utils.FloatField(body, "lon", "lng", "longitude", "Longitude")
	if !latPresent || !lonPresent {
		return models.LocationInput{}, apperrors.MissingField("lat/lon", "Latitude and longitude are required")
	}
	if !latOK || !lonOK {
		return models.LocationInput{}, apperrors.InvalidPayload("Latitude and longitude must be numeric", nil)
	}

	return models.LocationInput{
		Latitude:    lat,
		Longitude:   lon,
		TextAddress: utils.StringField(body, "textAddress", "TextAddress", "address"),
		Description: utils.StringField(body, "description", "Description"),
		PhoneNumber: utils.StringField(body, "phoneNumber", "PhoneNumber", "phone"),
	}, nil
}
