package usecase

import (
	"context"

	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/mrshoofer/mrshoofer/internal/utils"
)

// notify hands a notification to the gateway. Failures are logged and
// never reach the caller.
func (uc *TripUC) notify(ctx context.Context, notification *models.Notification) {
	if err := uc.tripGW.Notify(ctx, notification); err != nil {
		logger.WarnCtx(ctx, "Failed to queue notification",
			logger.String("kind", string(notification.Kind)),
			logger.String("trip_id", notification.TripID.String()),
			logger.String("phone", utils.MaskPhoneNumber(notification.Phone)),
			logger.ErrorField(err))
	}
}

func driverNotification(kind models.NotificationKind, detail *models.TripDetail) *models.Notification {
	return &models.Notification{
		Kind:            kind,
		Phone:           detail.Driver.PhoneNumber,
		TripID:          detail.ID,
		FirstName:       detail.Driver.FirstName,
		LastName:        detail.Driver.LastName,
		OriginCity:      detail.OriginCity,
		DestinationCity: detail.DestinationCity,
		TicketCode:      detail.TicketCode,
		SecureToken:     detail.SecureToken,
		StartsAt:        detail.StartsAt,
	}
}
