package trips

import (
	"context"

	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/mrshoofer/mrshoofer/services/trips TripGW

// TripGW hands notifications off for delivery outside the request
type TripGW interface {
	Notify(ctx context.Context, notification *models.Notification) error
}
