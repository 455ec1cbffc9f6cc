package usecase

import (
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/mrshoofer/mrshoofer/services/passengers"
)

type PassengerUC struct {
	passengerRepo passengers.PassengerRepo
	cfg           *models.Config
}

// NewPassengerUC creates a new passenger usecase instance
func NewPassengerUC(
	passengerRepo passengers.PassengerRepo,
	cfg *models.Config,
) *PassengerUC {
	return &PassengerUC{
		passengerRepo: passengerRepo,
		cfg:           cfg,
	}
}
