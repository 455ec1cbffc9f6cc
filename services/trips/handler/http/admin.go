package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	"github.com/mrshoofer/mrshoofer/internal/pkg/middleware"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/mrshoofer/mrshoofer/internal/utils"
)

type statusRequest struct {
	Status models.TripStatus `json:"status" validate:"required"`
}

type adminCancelRequest struct {
	TicketCode string `json:"ticketCode" validate:"required"`
}

type smsStatus struct {
	Queued bool   `json:"queued"`
	Kind   string `json:"kind"`
}

type assignDriverResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Trip    *models.TripDetail `json:"trip"`
	SMS     smsStatus          `json:"sms"`
}

// UpdateStatus moves a trip to a new status if the transition is allowed
func (h *TripHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, apperrors.InvalidPayload("Invalid trip id", err), h.cfg.App.Debug)
	}

	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return utils.AppErrorResponse(c, apperrors.InvalidPayload("Invalid request payload", err), h.cfg.App.Debug)
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}

	trip, err := h.tripUC.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		logger.Warn("Failed to update trip status",
			logger.String("trip_id", id.String()),
			logger.String("status", string(req.Status)),
			logger.String("admin_id", adminID(c)),
			logger.ErrorField(err))
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip status updated", trip)
}

// AssignDriver links a driver to a trip. POST and PUT share this handler.
func (h *TripHandler) AssignDriver(c echo.Context) error {
	var req models.AssignDriverRequest
	if err := c.Bind(&req); err != nil {
		return utils.AppErrorResponse(c, apperrors.InvalidPayload("Invalid request payload", err), h.cfg.App.Debug)
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}

	tripID := uuid.MustParse(req.TripID)
	driverID := uuid.MustParse(req.DriverID)

	detail, err := h.tripUC.AssignDriver(c.Request().Context(), tripID, driverID)
	if err != nil {
		logger.Error("Failed to assign driver",
			logger.String("trip_id", req.TripID),
			logger.String("driver_id", req.DriverID),
			logger.ErrorField(err))
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}

	logger.Info("Driver assigned by admin",
		logger.String("trip_id", req.TripID),
		logger.String("admin_id", adminID(c)))

	return c.JSON(http.StatusOK, assignDriverResponse{
		Success: true,
		Message: "Driver assigned successfully",
		Trip:    detail,
		SMS:     smsStatus{Queued: true, Kind: string(models.NotificationDriverAssigned)},
	})
}

// AdminCancelTrip cancels a trip on behalf of an admin
func (h *TripHandler) AdminCancelTrip(c echo.Context) error {
	var req adminCancelRequest
	if err := c.Bind(&req); err != nil {
		return utils.AppErrorResponse(c, apperrors.InvalidPayload("Invalid request payload", err), h.cfg.App.Debug)
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}

	if err := h.tripUC.CancelTrip(c.Request().Context(), req.TicketCode); err != nil {
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}

	logger.Info("Trip canceled by admin",
		logger.String("ticket_code", req.TicketCode),
		logger.String("admin_id", adminID(c)))
	return utils.SuccessResponse(c, http.StatusOK, "Trip canceled", nil)
}

// Upcomings lists the trips starting on ?day=YYYY-MM-DD (Tehran). A failed
// query answers an empty list flagged with X-Fallback.
func (h *TripHandler) Upcomings(c echo.Context) error {
	trips, err := h.tripUC.ListUpcomings(c.Request().Context(), c.QueryParam("day"))
	if err != nil {
		if apperrors.HTTPStatus(err) == http.StatusBadRequest {
			return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
		}
		logger.Error("Failed to list upcoming trips; answering empty list", logger.ErrorField(err))
		c.Response().Header().Set("X-Fallback", "true")
		return c.JSON(http.StatusOK, []*models.TripDetail{})
	}
	return c.JSON(http.StatusOK, trips)
}

// ListTrips serves the superadmin trip table
func (h *TripHandler) ListTrips(c echo.Context) error {
	filter, err := tripFilterFrom(c)
	if err != nil {
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}

	page, err := h.tripUC.ListTrips(c.Request().Context(), filter)
	if err != nil {
		logger.Error("Failed to list trips", logger.ErrorField(err))
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}
	return c.JSON(http.StatusOK, page)
}

func tripFilterFrom(c echo.Context) (models.TripFilter, error) {
	filter := models.TripFilter{
		Page:      queryInt(c, "page", 1),
		PageSize:  queryInt(c, "pageSize", 10),
		Search:    strings.TrimSpace(c.QueryParam("search")),
		Driver:    c.QueryParam("driver"),
		Location:  c.QueryParam("location"),
		Status:    models.TripStatus(c.QueryParam("status")),
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
	}
	if filter.SortBy == "" {
		filter.SortBy = "StartsAt"
	}
	if filter.SortOrder == "" {
		filter.SortOrder = "desc"
	}

	var err error
	if filter.DateFrom, err = queryTime(c, "dateFrom", false); err != nil {
		return filter, err
	}
	if filter.DateTo, err = queryTime(c, "dateTo", true); err != nil {
		return filter, err
	}
	return filter, nil
}

func queryInt(c echo.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return fallback
	}
	return v
}

// queryTime parses a partner-style timestamp. A bare day bound as dateTo
// covers the whole Tehran day.
func queryTime(c echo.Context, name string, endOfDay bool) (*time.Time, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	t, err := utils.ParsePartnerTime(raw)
	if err != nil {
		return nil, apperrors.InvalidPayload("Invalid "+name, err)
	}
	if endOfDay && len(raw) == len("2006-01-02") {
		t = t.Add(24*time.Hour - time.Millisecond)
	}
	return &t, nil
}

func adminID(c echo.Context) string {
	id, _ := c.Get(middleware.AdminIDKey).(string)
	return id
}
