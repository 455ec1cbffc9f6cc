package models

import (
	"time"

	"github.com/google/uuid"
)

// Location is the pickup point a passenger submitted for a trip.
// There is at most one per trip.
type Location struct {
	ID          uuid.UUID `json:"id" db:"id"`
	TripID      uuid.UUID `json:"tripId" db:"trip_id"`
	PassengerID uuid.UUID `json:"passengerId" db:"passenger_id"`
	Latitude    float64   `json:"latitude" db:"latitude"`
	Longitude   float64   `json:"longitude" db:"longitude"`
	TextAddress *string   `json:"textAddress,omitempty" db:"text_address"`
	Description *string   `json:"description,omitempty" db:"description"`
	PhoneNumber *string   `json:"phoneNumber,omitempty" db:"phone_number"`
	Geohash     string    `json:"geohash" db:"geohash"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// LocationInput is a validated location submission
type LocationInput struct {
	Latitude    float64
	Longitude   float64
	TextAddress string
	Description string
	PhoneNumber string
}

// TripLocationView is what the passenger location page reads
type TripLocationView struct {
	Location *Location `json:"location"`
	Trip     *Trip     `json:"trip"`
}

// LocationResult is returned after a location submission
type LocationResult struct {
	Location *Location   `json:"location"`
	Trip     *TripDetail `json:"trip"`
}

// Point is a plain coordinate pair
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
