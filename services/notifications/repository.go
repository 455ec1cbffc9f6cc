package notifications

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/mrshoofer/mrshoofer/services/notifications NotificationRepo

// NotificationRepo records delivery state on the notified rows
type NotificationRepo interface {
	MarkPassengerSmsSent(ctx context.Context, tripID uuid.UUID) error
}
