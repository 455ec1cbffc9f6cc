package notifications

import (
	"context"

	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
)

// Notifier queues a notification without waiting for delivery
type Notifier interface {
	Notify(ctx context.Context, n *models.Notification) error
}
