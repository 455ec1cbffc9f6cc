package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/mrshoofer/mrshoofer/services/trips/handler/http"
)

// Handler exposes the trip endpoints
type Handler struct {
	tripHandler *http.TripHandler
}

// NewHandler creates the trip route handler
func NewHandler(tripHandler *http.TripHandler) *Handler {
	return &Handler{tripHandler: tripHandler}
}

// RegisterORSRoutes mounts the authoritative partner create-trip endpoint
// on a group guarded by the partner secret
func (h *Handler) RegisterORSRoutes(ors *echo.Group) {
	ors.POST("/trip", h.tripHandler.CreateTrip)
	ors.POST("/trip/cancel", h.tripHandler.CancelTrip)
}

// RegisterPartnerRoutes mounts the partner aliases, including the GET
// create-trip workaround
func (h *Handler) RegisterPartnerRoutes(partner *echo.Group) {
	partner.GET("/trip-create", h.tripHandler.CreateTripFromQuery)
	partner.POST("/trip-create", h.tripHandler.CreateTrip)
	partner.POST("/trip/cancel", h.tripHandler.CancelTrip)
}

// RegisterPublicRoutes mounts the passenger endpoints; the secure token in
// the path is the only credential
func (h *Handler) RegisterPublicRoutes(api *echo.Group) {
	api.POST("/trip/estimate", h.tripHandler.Estimate)
	api.GET("/trip/:token", h.tripHandler.GetTrip)
	api.GET("/trip/:token/location", h.tripHandler.GetLocation)
	api.PUT("/trip/:token/location", h.tripHandler.SubmitLocation)
	api.POST("/trip/:token/location", h.tripHandler.SubmitLocation)
}

// RegisterAdminRoutes mounts the console endpoints behind the admin session
func (h *Handler) RegisterAdminRoutes(manage *echo.Group) {
	manage.POST("/drivers/assign-driver", h.tripHandler.AssignDriver)
	manage.PUT("/drivers/assign-driver", h.tripHandler.AssignDriver)
	manage.GET("/upcomings", h.tripHandler.Upcomings)
	manage.POST("/trips/cancel", h.tripHandler.AdminCancelTrip)
	manage.PATCH("/trips/:id/status", h.tripHandler.UpdateStatus)
}

// RegisterSuperAdminRoutes mounts the superadmin trip table
func (h *Handler) RegisterSuperAdminRoutes(superadmin *echo.Group) {
	superadmin.GET("/trips", h.tripHandler.ListTrips)
}
