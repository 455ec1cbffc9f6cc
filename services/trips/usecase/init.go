package usecase

import (
	"time"

	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/mrshoofer/mrshoofer/internal/utils"
	"github.com/mrshoofer/mrshoofer/services/passengers"
	"github.com/mrshoofer/mrshoofer/services/trips"
)

type TripUC struct {
	tripRepo    trips.TripRepo
	tripGW      trips.TripGW
	passengerUC passengers.PassengerUC
	cfg         *models.Config

	randomCode func(n int) (string, error)
	now        func() time.Time
}

// NewTripUC creates a new trip usecase instance
func NewTripUC(
	tripRepo trips.TripRepo,
	tripGW trips.TripGW,
	passengerUC passengers.PassengerUC,
	cfg *models.Config,
) *TripUC {
	return &TripUC{
		tripRepo:    tripRepo,
		tripGW:      tripGW,
		passengerUC: passengerUC,
		cfg:         cfg,
		randomCode:  utils.RandomAlphanumeric,
		now:         time.Now,
	}
}
