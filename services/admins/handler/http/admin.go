package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/mrshoofer/mrshoofer/internal/utils"
)

// Create registers a console account; the body carries the admin secret
func (h *AdminHandler) Create(c echo.Context) error {
	var req models.CreateAdminRequest
	if err := c.Bind(&req); err != nil {
		return utils.AppErrorResponse(c, apperrors.InvalidPayload("Invalid request payload", err), h.cfg.App.Debug)
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}

	admin, err := h.adminUC.CreateAdmin(c.Request().Context(), req)
	if err != nil {
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Admin created", admin)
}

// UpdatePassword resets a console password; the body carries the admin secret
func (h *AdminHandler) UpdatePassword(c echo.Context) error {
	var req models.UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.AppErrorResponse(c, apperrors.InvalidPayload("Invalid request payload", err), h.cfg.App.Debug)
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}

	if err := h.adminUC.UpdatePassword(c.Request().Context(), req); err != nil {
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Password updated", nil)
}

// List returns every console account
func (h *AdminHandler) List(c echo.Context) error {
	list, err := h.adminUC.ListAdmins(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Admins retrieved", list)
}
