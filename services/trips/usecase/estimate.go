package usecase

import (
	"context"
	"math"

	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/mrshoofer/mrshoofer/internal/utils"
)

// Alternative route factors relative to the direct route
const (
	leastTrafficDistance = 1.15
	leastTrafficDuration = 0.85
	leastTrafficPrice    = 1.1
)

// Estimate prices a trip on the great-circle distance between two points
func (uc *TripUC) Estimate(ctx context.Context, req models.EstimateRequest) (*models.Estimate, error) {
	if !utils.ValidCoordinates(req.Origin.Latitude, req.Origin.Longitude) ||
		!utils.ValidCoordinates(req.Destination.Latitude, req.Destination.Longitude) {
		return nil, apperrors.InvalidPayload("Origin and destination must be valid coordinates", nil)
	}

	multiplier, err := uc.vehicleMultiplier(req.VehicleType)
	if err != nil {
		return nil, err
	}

	pricing := uc.cfg.Pricing
	distance := utils.CalculateDistance(req.Origin, req.Destination)
	duration := distance * pricing.MinutesPerKm
	price := distance * pricing.RatePerKm * multiplier

	fastest := models.RouteOption{
		Name:            "fastest",
		DistanceKm:      round1(distance),
		DurationMinutes: int(math.Round(duration)),
		Price:           int64(math.Round(price)),
	}
	leastTraffic := models.RouteOption{
		Name:            "least_traffic",
		DistanceKm:      round1(distance * leastTrafficDistance),
		DurationMinutes: int(math.Round(duration * leastTrafficDuration)),
		Price:           int64(math.Round(price * leastTrafficPrice)),
	}

	return &models.Estimate{
		DistanceKm:      fastest.DistanceKm,
		DurationMinutes: fastest.DurationMinutes,
		Price:           fastest.Price,
		Currency:        pricing.Currency,
		Routes:          []models.RouteOption{fastest, leastTraffic},
	}, nil
}

func (uc *TripUC) vehicleMultiplier(vehicle models.VehicleType) (float64, error) {
	switch vehicle {
	case "", models.VehicleEconomy:
		return 1, nil
	case models.VehicleComfort:
		return uc.cfg.Pricing.ComfortMultiplier, nil
	case models.VehiclePremium:
		return uc.cfg.Pricing.PremiumMultiplier, nil
	default:
		return 0, apperrors.InvalidPayload("Unknown vehicle type "+string(vehicle), nil)
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
