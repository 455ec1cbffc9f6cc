package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/mrshoofer/mrshoofer/services/admins/handler/http"
)

// Handler exposes the admin console endpoints
type Handler struct {
	adminHandler *http.AdminHandler
}

// NewHandler creates the admin route handler
func NewHandler(adminHandler *http.AdminHandler) *Handler {
	return &Handler{adminHandler: adminHandler}
}

// RegisterAuthRoutes mounts the unauthenticated sign-in endpoints
func (h *Handler) RegisterAuthRoutes(auth *echo.Group) {
	auth.POST("/login", h.adminHandler.Login)
	auth.POST("/request-otp", h.adminHandler.RequestOTP)
	auth.POST("/verify-otp", h.adminHandler.VerifyOTP)
}

// RegisterAccountRoutes mounts account management. Create and password
// updates are gated by the admin secret in the body; listing needs a
// superadmin session.
func (h *Handler) RegisterAccountRoutes(admin *echo.Group, superAdmin ...echo.MiddlewareFunc) {
	admin.POST("/create", h.adminHandler.Create)
	admin.POST("/update-password", h.adminHandler.UpdatePassword)
	admin.GET("/list", h.adminHandler.List, superAdmin...)
}
