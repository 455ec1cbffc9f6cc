package handler

import (
	"context"
	"time"

	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	nsqpkg "github.com/mrshoofer/mrshoofer/internal/pkg/nsq"
	"github.com/mrshoofer/mrshoofer/internal/utils"
	"github.com/mrshoofer/mrshoofer/services/notifications"
)

const defaultSendTimeout = 15 * time.Second

// NotificationHandler delivers notifications consumed from NSQ
type NotificationHandler struct {
	notificationUC notifications.NotificationUC
	cfg            *models.Config
}

// NewNotificationHandler creates a new NSQ notification handler
func NewNotificationHandler(notificationUC notifications.NotificationUC, cfg *models.Config) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: notificationUC,
		cfg:            cfg,
	}
}

// HandleMessage decodes one queued notification and sends it
func (h *NotificationHandler) HandleMessage(body []byte) error {
	var n models.Notification
	if err := nsqpkg.UnmarshalMessage(body, &n); err != nil {
		return err
	}

	timeout := h.cfg.SMS.SendTimeout
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := h.notificationUC.Dispatch(ctx, &n); err != nil {
		return err
	}
	logger.Debug("Notification delivered",
		logger.String("kind", string(n.Kind)),
		logger.String("phone", utils.MaskPhoneNumber(n.Phone)))
	return nil
}
