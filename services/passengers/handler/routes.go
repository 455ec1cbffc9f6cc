package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/mrshoofer/mrshoofer/services/passengers/handler/http"
)

// Handler exposes the passenger endpoints
type Handler struct {
	passengerHandler *http.PassengerHandler
}

// NewHandler creates the passenger route handler
func NewHandler(passengerHandler *http.PassengerHandler) *Handler {
	return &Handler{passengerHandler: passengerHandler}
}

// RegisterPartnerRoutes mounts registration on a group already guarded by
// the partner secret
func (h *Handler) RegisterPartnerRoutes(partner *echo.Group) {
	partner.GET("/register", h.passengerHandler.Lookup)
	partner.POST("/register", h.passengerHandler.Register)
	partner.PUT("/register", h.passengerHandler.Register)
}
