package http

import (
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/mrshoofer/mrshoofer/services/admins"
)

// AdminHandler serves console authentication and account management
type AdminHandler struct {
	adminUC admins.AdminUC
	cfg     *models.Config
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	adminUC admins.AdminUC,
	cfg *models.Config,
) *AdminHandler {
	return &AdminHandler{
		adminUC: adminUC,
		cfg:     cfg,
	}
}
