package models

import (
	"time"

	"github.com/google/uuid"
)

// Driver is a driver managed from the admin console
type Driver struct {
	ID          uuid.UUID `json:"id" db:"id"`
	FirstName   string    `json:"firstName" db:"first_name"`
	LastName    string    `json:"lastName" db:"last_name"`
	PhoneNumber string    `json:"phoneNumber" db:"phone_number"`
	CarName     string    `json:"carName" db:"car_name"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// DriverRequest is the admin create/update body
type DriverRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	CarName     string `json:"carName" validate:"required"`
}

// AssignDriverRequest links a driver to a trip
type AssignDriverRequest struct {
	TripID   string `json:"tripId" validate:"required,uuid"`
	DriverID string `json:"driverId" validate:"required,uuid"`
}
