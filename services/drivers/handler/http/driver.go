package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/mrshoofer/mrshoofer/internal/utils"
	"github.com/mrshoofer/mrshoofer/services/drivers"
)

// DriverHandler serves the admin driver directory
type DriverHandler struct {
	driverUC drivers.DriverUC
	cfg      *models.Config
}

// NewDriverHandler creates a new driver handler
func NewDriverHandler(
	driverUC drivers.DriverUC,
	cfg *models.Config,
) *DriverHandler {
	return &DriverHandler{
		driverUC: driverUC,
		cfg:      cfg,
	}
}

// List returns every driver, filtered by ?search= when present
func (h *DriverHandler) List(c echo.Context) error {
	list, err := h.driverUC.ListDrivers(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		logger.Error("Failed to list drivers", logger.ErrorField(err))
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}
	return c.JSON(http.StatusOK, list)
}

// Get returns a single driver
func (h *DriverHandler) Get(c echo.Context) error {
	id, err := h.driverID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}

	driver, err := h.driverUC.GetDriver(c.Request().Context(), id)
	if err != nil {
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}
	return c.JSON(http.StatusOK, driver)
}

// Create registers a driver
func (h *DriverHandler) Create(c echo.Context) error {
	var req models.DriverRequest
	if err := c.Bind(&req); err != nil {
		return utils.AppErrorResponse(c, apperrors.InvalidPayload("Invalid request payload", err), h.cfg.App.Debug)
	}

	driver, err := h.driverUC.CreateDriver(c.Request().Context(), req)
	if err != nil {
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}
	return c.JSON(http.StatusCreated, driver)
}

// Update replaces a driver's details
func (h *DriverHandler) Update(c echo.Context) error {
	id, err := h.driverID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}

	var req models.DriverRequest
	if err := c.Bind(&req); err != nil {
		return utils.AppErrorResponse(c, apperrors.InvalidPayload("Invalid request payload", err), h.cfg.App.Debug)
	}

	driver, err := h.driverUC.UpdateDriver(c.Request().Context(), id, req)
	if err != nil {
		logger.Warn("Failed to update driver",
			logger.String("driver_id", id.String()),
			logger.ErrorField(err))
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}
	return c.JSON(http.StatusOK, driver)
}

// Delete removes a driver
func (h *DriverHandler) Delete(c echo.Context) error {
	id, err := h.driverID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}

	if err := h.driverUC.DeleteDriver(c.Request().Context(), id); err != nil {
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver deleted", nil)
}

func (h *DriverHandler) driverID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.InvalidPayload("Invalid driver id", err)
	}
	return id, nil
}
