package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	nrpkg "github.com/mrshoofer/mrshoofer/internal/pkg/newrelic"
	"github.com/mrshoofer/mrshoofer/internal/utils"
)

// Dispatch renders n and sends it through the configured provider. A sent
// passenger notification sets the trip's passenger_sms_sent flag.
func (uc *NotificationUC) Dispatch(ctx context.Context, n *models.Notification) error {
	_, err := nrpkg.TraceUseCase(ctx, "NotificationUC.Dispatch", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, uc.dispatch(ctx, n)
	})
	return err
}

func (uc *NotificationUC) dispatch(ctx context.Context, n *models.Notification) error {
	if n == nil || strings.TrimSpace(n.Phone) == "" {
		return apperrors.MissingField("phone", "Notification has no recipient")
	}

	msg, err := uc.render(n)
	if err != nil {
		return err
	}

	if err := uc.provider.Send(ctx, msg); err != nil {
		logger.ErrorCtx(ctx, "Failed to send SMS",
			logger.String("kind", string(n.Kind)),
			logger.String("provider", uc.provider.Name()),
			logger.String("phone", utils.MaskPhoneNumber(n.Phone)),
			logger.ErrorField(err))
		return fmt.Errorf("failed to send %s sms: %w", n.Kind, err)
	}

	logger.InfoCtx(ctx, "SMS sent",
		logger.String("kind", string(n.Kind)),
		logger.String("provider", uc.provider.Name()),
		logger.String("phone", utils.MaskPhoneNumber(n.Phone)))

	if n.Kind == models.NotificationPassengerTripCreated && n.TripID != uuid.Nil {
		if err := uc.notificationRepo.MarkPassengerSmsSent(ctx, n.TripID); err != nil {
			logger.WarnCtx(ctx, "Failed to flag passenger SMS as sent",
				logger.String("trip_id", n.TripID.String()),
				logger.ErrorField(err))
			return err
		}
	}
	return nil
}
