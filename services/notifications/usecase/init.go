package usecase

import (
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/mrshoofer/mrshoofer/internal/pkg/sms"
	"github.com/mrshoofer/mrshoofer/services/notifications"
)

type NotificationUC struct {
	notificationRepo notifications.NotificationRepo
	provider         sms.Provider
	cfg              *models.Config
}

// NewNotificationUC creates a new notification usecase instance
func NewNotificationUC(
	notificationRepo notifications.NotificationRepo,
	provider sms.Provider,
	cfg *models.Config,
) *NotificationUC {
	return &NotificationUC{
		notificationRepo: notificationRepo,
		provider:         provider,
		cfg:              cfg,
	}
}
