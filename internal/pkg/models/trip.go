package models

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus represents the lifecycle state of a trip
type TripStatus string

// The misspelled "wating" values are the persisted wire form shared with partners.
const (
	TripStatusWaitingInfo     TripStatus = "wating_info"
	TripStatusWaitingLocation TripStatus = "wating_location"
	TripStatusWaitingStart    TripStatus = "wating_start"
	TripStatusInTrip          TripStatus = "intrip"
	TripStatusDone            TripStatus = "done"
	TripStatusCanceled        TripStatus = "canceled"
)

// tripStatusOrder is the forward sequence; canceled sits outside it
var tripStatusOrder = map[TripStatus]int{
	TripStatusWaitingInfo:     0,
	TripStatusWaitingLocation: 1,
	TripStatusWaitingStart:    2,
	TripStatusInTrip:          3,
	TripStatusDone:            4,
}

// Valid reports whether s is a known status
func (s TripStatus) Valid() bool {
	if s == TripStatusCanceled {
		return true
	}
	_, ok := tripStatusOrder[s]
	return ok
}

// Terminal reports whether no transition is defined out of s
func (s TripStatus) Terminal() bool {
	return s == TripStatusDone || s == TripStatusCanceled
}

// CanTransition reports whether a trip in status from may move to status to.
// Terminal states have no outgoing transitions, canceled is reachable from any
// non-terminal state and everything else must move forward.
func CanTransition(from, to TripStatus) bool {
	if !from.Valid() || !to.Valid() || from.Terminal() {
		return false
	}
	if to == TripStatusCanceled {
		return true
	}
	return tripStatusOrder[to] > tripStatusOrder[from]
}

// Trip is a booked intercity ride
type Trip struct {
	ID               uuid.UUID  `json:"id" db:"id"`
	TicketCode       string     `json:"ticketCode" db:"ticket_code"`
	TripCode         *string    `json:"tripCode,omitempty" db:"trip_code"`
	OriginID         *string    `json:"originId,omitempty" db:"origin_id"`
	DestinationID    *string    `json:"destinationId,omitempty" db:"destination_id"`
	OriginCity       string     `json:"originCity" db:"origin_city"`
	DestinationCity  string     `json:"destinationCity" db:"destination_city"`
	CarName          string     `json:"carName" db:"car_name"`
	ServiceName      string     `json:"serviceName" db:"service_name"`
	StartsAt         time.Time  `json:"startsAt" db:"starts_at"`
	Status           TripStatus `json:"status" db:"status"`
	SecureToken      string     `json:"secureToken" db:"secure_token"`
	PassengerID      uuid.UUID  `json:"passengerId" db:"passenger_id"`
	DriverID         *uuid.UUID `json:"driverId,omitempty" db:"driver_id"`
	LocationID       *uuid.UUID `json:"locationId,omitempty" db:"location_id"`
	PassengerSmsSent bool       `json:"passengerSmsSent" db:"passenger_sms_sent"`
	AdminApproved    bool       `json:"adminApproved" db:"admin_approved"`
	CreatedAt        time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time  `json:"updatedAt" db:"updated_at"`
}

// TripDetail is a trip with its related rows loaded
type TripDetail struct {
	Trip
	Passenger *Passenger `json:"passenger,omitempty"`
	Driver    *Driver    `json:"driver,omitempty"`
	Location  *Location  `json:"location,omitempty"`
}

// TripInput is the partner-facing trip payload after field extraction
type TripInput struct {
	TicketCode      string
	TripCode        string
	OriginID        string
	DestinationID   string
	OriginCity      string
	DestinationCity string
	CarName         string
	ServiceName     string
	StartsAt        time.Time
}

// CreateTripRequest is the normalized body of a partner create-trip call
type CreateTripRequest struct {
	Passenger PassengerInput
	Trip      TripInput
}

// CreateTripResponse is returned to the partner after a trip is booked
type CreateTripResponse struct {
	Trip      *Trip      `json:"trip"`
	Passenger *Passenger `json:"passenger"`
}

// TripFilter narrows the superadmin trip listing
type TripFilter struct {
	Page      int
	PageSize  int
	Search    string
	Driver    string // "assigned" or "unassigned"
	Location  string // "assigned" or "unassigned"
	Status    TripStatus
	SortBy    string
	SortOrder string
	DateFrom  *time.Time
	DateTo    *time.Time
}

// TripPage is one page of the superadmin trip listing
type TripPage struct {
	Data       []*TripDetail `json:"data"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalPages int           `json:"totalPages"`
}
