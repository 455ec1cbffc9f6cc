package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind names the SMS templates the system sends
type NotificationKind string

const (
	NotificationPassengerTripCreated NotificationKind = "passenger_trip_created"
	NotificationDriverAssigned       NotificationKind = "driver_assigned"
	NotificationDriverLocationAdded  NotificationKind = "driver_location_added"
	NotificationDriverTripCanceled   NotificationKind = "driver_trip_canceled"
	NotificationAdminOTP             NotificationKind = "admin_otp"
)

// Notification is queued for delivery by SMS
type Notification struct {
	Kind            NotificationKind `json:"kind"`
	Phone           string           `json:"phone"`
	TripID          uuid.UUID        `json:"trip_id,omitempty"`
	FirstName       string           `json:"first_name,omitempty"`
	LastName        string           `json:"last_name,omitempty"`
	OriginCity      string           `json:"origin_city,omitempty"`
	DestinationCity string           `json:"destination_city,omitempty"`
	TicketCode      string           `json:"ticket_code,omitempty"`
	SecureToken     string           `json:"secure_token,omitempty"`
	StartsAt        time.Time        `json:"starts_at,omitempty"`
	Code            string           `json:"code,omitempty"`
}
