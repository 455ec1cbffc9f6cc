package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/mrshoofer/mrshoofer/internal/utils"
)

// loginRequest also accepts the console's older email/username fields
type loginRequest struct {
	Identifier string `json:"identifier"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	Password   string `json:"password"`
}

// Login handles email-or-name and password sign in
func (h *AdminHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return utils.AppErrorResponse(c, apperrors.InvalidPayload("Invalid request payload", err), h.cfg.App.Debug)
	}

	identifier := req.Identifier
	if identifier == "" {
		identifier = req.Email
	}
	if identifier == "" {
		identifier = req.Username
	}

	auth, err := h.adminUC.Login(c.Request().Context(), models.LoginRequest{
		Identifier: identifier,
		Password:   req.Password,
	})
	if err != nil {
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Login successful", auth)
}

// RequestOTP sends a login code by SMS
func (h *AdminHandler) RequestOTP(c echo.Context) error {
	var req models.OTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.AppErrorResponse(c, apperrors.InvalidPayload("Invalid request payload", err), h.cfg.App.Debug)
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}

	issued, err := h.adminUC.RequestOTP(c.Request().Context(), req.Phone)
	if err != nil {
		logger.Warn("Failed to issue admin otp",
			logger.String("phone", utils.MaskPhoneNumber(req.Phone)),
			logger.ErrorField(err))
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Verification code sent", issued)
}

// VerifyOTP exchanges a code for a session token
func (h *AdminHandler) VerifyOTP(c echo.Context) error {
	var req models.OTPVerifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.AppErrorResponse(c, apperrors.InvalidPayload("Invalid request payload", err), h.cfg.App.Debug)
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}

	auth, err := h.adminUC.VerifyOTP(c.Request().Context(), req.Phone, req.Code)
	if err != nil {
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Login successful", auth)
}
