package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/mrshoofer/mrshoofer/services/drivers/handler/http"
)

// Handler exposes the driver endpoints
type Handler struct {
	driverHandler *http.DriverHandler
}

// NewHandler creates the driver route handler
func NewHandler(driverHandler *http.DriverHandler) *Handler {
	return &Handler{driverHandler: driverHandler}
}

// RegisterAdminRoutes mounts the driver directory on the authenticated admin group
func (h *Handler) RegisterAdminRoutes(manage *echo.Group) {
	manage.GET("/drivers", h.driverHandler.List)
	manage.POST("/drivers", h.driverHandler.Create)
	manage.GET("/drivers/:id", h.driverHandler.Get)
	manage.PUT("/drivers/:id", h.driverHandler.Update)
	manage.DELETE("/drivers/:id", h.driverHandler.Delete)
}
