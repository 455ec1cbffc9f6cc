package models

import (
	"time"

	"github.com/google/uuid"
)

// Passenger is a rider, keyed by canonical phone number
type Passenger struct {
	ID           uuid.UUID `json:"id" db:"id"`
	FirstName    string    `json:"firstName" db:"first_name"`
	LastName     string    `json:"lastName" db:"last_name"`
	PhoneNumber  string    `json:"phoneNumber" db:"phone_number"`
	NationalCode *string   `json:"nationalCode,omitempty" db:"national_code"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// PassengerInput carries the fields a caller supplied for a passenger.
// Empty strings mean "not provided".
type PassengerInput struct {
	PhoneNumber  string
	FirstName    string
	LastName     string
	NationalCode string
}

// RegisterResult reports the outcome of a registration call
type RegisterResult struct {
	Passenger *Passenger `json:"passenger"`
	IsNew     bool       `json:"isNew"`
}
