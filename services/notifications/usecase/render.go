package usecase

import (
	"fmt"
	"strings"

	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/mrshoofer/mrshoofer/internal/pkg/sms"
	"github.com/mrshoofer/mrshoofer/internal/utils"
)

// render turns a notification into the provider message for its kind
func (uc *NotificationUC) render(n *models.Notification) (sms.Message, error) {
	templates := uc.cfg.SMS.Templates
	msg := sms.Message{To: n.Phone}

	switch n.Kind {
	case models.NotificationPassengerTripCreated:
		msg.TemplateID = templates.PassengerTripCreated
		msg.Params = []sms.Param{
			{Name: "FIRSTNAME", Value: n.FirstName},
			{Name: "LASTNAME", Value: n.LastName},
			{Name: "ORIGIN", Value: n.OriginCity},
			{Name: "DESTINATION", Value: n.DestinationCity},
			{Name: "TRIPCCODE", Value: n.SecureToken},
		}
		msg.Text = fmt.Sprintf("%s, your trip from %s to %s is booked. Choose your pickup point: %s",
			fullName(n), n.OriginCity, n.DestinationCity, link(uc.cfg.Links.PassengerBaseURL, "trip/info", n.SecureToken))

	case models.NotificationDriverAssigned:
		msg.TemplateID = templates.DriverAssigned
		msg.Params = []sms.Param{
			{Name: "ORIGIN", Value: n.OriginCity},
			{Name: "DESTINATION", Value: n.DestinationCity},
			{Name: "SECRETCODE", Value: n.SecureToken},
		}
		msg.Text = fmt.Sprintf("New trip from %s to %s: %s",
			n.OriginCity, n.DestinationCity, link(uc.cfg.Links.DriverBaseURL, "trip", n.SecureToken))

	case models.NotificationDriverLocationAdded:
		msg.TemplateID = templates.DriverLocationAdded
		msg.Params = scheduledDriverParams(n)
		msg.Text = fmt.Sprintf("Pickup point set for %s to %s on %s %s: %s",
			n.OriginCity, n.DestinationCity, utils.JalaliDate(n.StartsAt), utils.TehranClock(n.StartsAt),
			link(uc.cfg.Links.DriverBaseURL, "trip", n.SecureToken))

	case models.NotificationDriverTripCanceled:
		msg.TemplateID = templates.DriverTripCanceled
		msg.Params = scheduledDriverParams(n)
		msg.Text = fmt.Sprintf("Trip %s to %s on %s %s was canceled",
			n.OriginCity, n.DestinationCity, utils.JalaliDate(n.StartsAt), utils.TehranClock(n.StartsAt))

	case models.NotificationAdminOTP:
		msg.TemplateID = templates.AdminOTP
		msg.Params = []sms.Param{{Name: "CODE", Value: n.Code}}
		msg.Text = "MrShoofer login code: " + n.Code

	default:
		return sms.Message{}, apperrors.InvalidPayload("Unknown notification kind "+string(n.Kind), nil)
	}

	return msg, nil
}

func scheduledDriverParams(n *models.Notification) []sms.Param {
	return []sms.Param{
		{Name: "ORIGIN", Value: n.OriginCity},
		{Name: "DESTINATION", Value: n.DestinationCity},
		{Name: "DATE", Value: utils.JalaliDate(n.StartsAt)},
		{Name: "HOUR", Value: utils.TehranClock(n.StartsAt)},
		{Name: "SECRETCODE", Value: n.SecureToken},
	}
}

func fullName(n *models.Notification) string {
	return strings.TrimSpace(n.FirstName + " " + n.LastName)
}

// link joins a base URL and path segments; without a base the token alone is sent
func link(base, path, token string) string {
	if base == "" {
		return token
	}
	return strings.TrimRight(base, "/") + "/" + path + "/" + token
}
