package gateway

import (
	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/mrshoofer/mrshoofer/services/notifications"
)

// NewNotifier publishes to NSQ when a producer is given and dispatches
// in-process otherwise
func NewNotifier(cfg *models.Config, producer Publisher, dispatcher notifications.NotificationUC) notifications.Notifier {
	if producer != nil {
		logger.Info("Notifications go through NSQ", logger.String("topic", cfg.NSQ.Topic))
		return NewNSQGW(producer, cfg.NSQ.Topic)
	}
	logger.Info("Notifications are dispatched in-process")
	return NewLocalGW(dispatcher, cfg.SMS.SendTimeout)
}
