package http

import (
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/mrshoofer/mrshoofer/services/trips"
)

// TripHandler serves the partner, passenger and admin trip endpoints
type TripHandler struct {
	tripUC trips.TripUC
	cfg    *models.Config
}

// NewTripHandler creates a new trip handler
func NewTripHandler(
	tripUC trips.TripUC,
	cfg *models.Config,
) *TripHandler {
	return &TripHandler{
		tripUC: tripUC,
		cfg:    cfg,
	}
}
