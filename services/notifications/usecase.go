package notifications

import (
	"context"

	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/mrshoofer/mrshoofer/services/notifications NotificationUC

// NotificationUC renders and sends notifications
type NotificationUC interface {
	// Dispatch sends the SMS for n synchronously
	Dispatch(ctx context.Context, n *models.Notification) error
}
