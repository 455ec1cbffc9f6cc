package usecase

import (
	"time"

	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/mrshoofer/mrshoofer/internal/utils"
	"github.com/mrshoofer/mrshoofer/services/admins"
	"github.com/mrshoofer/mrshoofer/services/notifications"
)

type AdminUC struct {
	adminRepo      admins.AdminRepo
	otpStore       admins.OTPStore
	notificationUC notifications.NotificationUC
	cfg            *models.Config

	randomCode func(n int) (string, error)
	now        func() time.Time
}

// NewAdminUC creates a new admin usecase instance. OTP codes are sent
// synchronously through notificationUC so a failed SMS fails the request.
func NewAdminUC(
	adminRepo admins.AdminRepo,
	otpStore admins.OTPStore,
	notificationUC notifications.NotificationUC,
	cfg *models.Config,
) *AdminUC {
	return &AdminUC{
		adminRepo:      adminRepo,
		otpStore:       otpStore,
		notificationUC: notificationUC,
		cfg:            cfg,
		randomCode:     utils.RandomDigits,
		now:            time.Now,
	}
}
