package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/mrshoofer/mrshoofer/internal/utils"
)

type locationViewResponse struct {
	Success  bool             `json:"success"`
	Location *models.Location `json:"location"`
	Trip     *models.Trip     `json:"trip"`
}

type locationSavedResponse struct {
	Success  bool               `json:"success"`
	Message  string             `json:"message"`
	Trip     *models.TripDetail `json:"trip"`
	Location *models.Location   `json:"location"`
}

// GetTrip returns the trip the secure token in the path grants access to
func (h *TripHandler) GetTrip(c echo.Context) error {
	detail, err := h.tripUC.GetTripByToken(c.Request().Context(), c.Param("token"))
	if err != nil {
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}
	return c.JSON(http.StatusOK, detail)
}

// GetLocation returns the pickup point of the trip, null when none was set
func (h *TripHandler) GetLocation(c echo.Context) error {
	view, err := h.tripUC.GetTripLocation(c.Request().Context(), c.Param("token"))
	if err != nil {
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}
	return c.JSON(http.StatusOK, locationViewResponse{
		Success:  true,
		Location: view.Location,
		Trip:     view.Trip,
	})
}

// SubmitLocation stores the passenger pickup point. PUT and POST share this
// handler.
func (h *TripHandler) SubmitLocation(c echo.Context) error {
	body, err := utils.DecodeObject(c.Request().Body)
	if err != nil {
		return utils.AppErrorResponse(c, apperrors.InvalidPayload("Invalid request payload", err), h.cfg.App.Debug)
	}

	input, err := locationInputFrom(body)
	if err != nil {
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}

	result, err := h.tripUC.SubmitLocation(c.Request().Context(), c.Param("token"), input)
	if err != nil {
		logger.Error("Failed to save trip location", logger.ErrorField(err))
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}

	return c.JSON(http.StatusOK, locationSavedResponse{
		Success:  true,
		Message:  "Location updated successfully",
		Trip:     result.Trip,
		Location: result.Location,
	})
}

// Estimate prices a trip between two points
func (h *TripHandler) Estimate(c echo.Context) error {
	var req models.EstimateRequest
	if err := c.Bind(&req); err != nil {
		return utils.AppErrorResponse(c, apperrors.InvalidPayload("Invalid request payload", err), h.cfg.App.Debug)
	}

	estimate, err := h.tripUC.Estimate(c.Request().Context(), req)
	if err != nil {
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Estimate calculated", estimate)
}
