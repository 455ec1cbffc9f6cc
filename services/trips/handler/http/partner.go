package http

import (
	"bytes"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/mrshoofer/mrshoofer/internal/utils"
)

type createTripQueryResponse struct {
	*models.CreateTripResponse
	Message string `json:"message"`
}

type cancelResponse struct {
	Success bool `json:"success"`
}

// CreateTrip books a trip from a partner JSON body
func (h *TripHandler) CreateTrip(c echo.Context) error {
	body, err := utils.DecodeObject(c.Request().Body)
	if err != nil {
		logger.Warn("Invalid request payload for trip creation",
			logger.ErrorField(err),
			logger.String("endpoint", "CreateTrip"),
		)
		return utils.AppErrorResponse(c, apperrors.InvalidPayload("Invalid request payload", err), h.cfg.App.Debug)
	}

	result, err := h.createTrip(c, body)
	if err != nil {
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}
	return c.JSON(http.StatusCreated, result)
}

// CreateTripFromQuery accepts the same body base64-encoded in ?data= for
// partners whose firewall rejects POST bodies
func (h *TripHandler) CreateTripFromQuery(c echo.Context) error {
	encoded := c.QueryParam("data")
	if encoded == "" {
		return utils.AppErrorResponse(c,
			apperrors.MissingField("data", "Missing 'data' query parameter. Provide base64-encoded JSON."), h.cfg.App.Debug)
	}

	decoded, err := decodeBase64(encoded)
	if err != nil {
		return utils.AppErrorResponse(c,
			apperrors.InvalidPayload("Invalid base64 or JSON in 'data' parameter", err), h.cfg.App.Debug)
	}
	body, err := utils.DecodeObject(bytes.NewReader(decoded))
	if err != nil {
		return utils.AppErrorResponse(c,
			apperrors.InvalidPayload("Invalid base64 or JSON in 'data' parameter", err), h.cfg.App.Debug)
	}

	result, err := h.createTrip(c, body)
	if err != nil {
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}
	return c.JSON(http.StatusOK, createTripQueryResponse{
		CreateTripResponse: result,
		Message:            "Trip created successfully",
	})
}

func (h *TripHandler) createTrip(c echo.Context, body map[string]interface{}) (*models.CreateTripResponse, error) {
	req, err := createTripRequestFrom(body)
	if err != nil {
		return nil, err
	}

	result, err := h.tripUC.CreateTrip(c.Request().Context(), req)
	if err != nil {
		logger.Error("Failed to create trip",
			logger.ErrorField(err),
			logger.String("phone", utils.MaskPhoneNumber(req.Passenger.PhoneNumber)),
		)
		return nil, err
	}
	return result, nil
}

// CancelTrip cancels a trip by {"ticketcode": "..."}
func (h *TripHandler) CancelTrip(c echo.Context) error {
	body, err := utils.DecodeObject(c.Request().Body)
	if err != nil {
		return utils.AppErrorResponse(c, apperrors.InvalidPayload("Invalid or missing ticketcode", err), h.cfg.App.Debug)
	}

	ticketCode := utils.StringField(body, "ticketcode", "ticketCode", "TicketCode")
	if ticketCode == "" {
		return utils.AppErrorResponse(c, apperrors.MissingField("ticketcode", "Invalid or missing ticketcode"), h.cfg.App.Debug)
	}

	if err := h.tripUC.CancelTrip(c.Request().Context(), ticketCode); err != nil {
		logger.Error("Failed to cancel trip",
			logger.ErrorField(err),
			logger.String("ticket_code", ticketCode),
		)
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}
	return c.JSON(http.StatusOK, cancelResponse{Success: true})
}

// decodeBase64 accepts standard and URL-safe alphabets, padded or not. An
// unescaped "+" arrives as a space after query decoding.
func decodeBase64(s string) ([]byte, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "+")
	var lastErr error
	for _, enc := range []*base64.Encoding{base64.StdEncoding, base64.URLEncoding, base64.RawStdEncoding, base64.RawURLEncoding} {
		decoded, err := enc.DecodeString(s)
		if err == nil {
			return decoded, nil
		}
		lastErr = err
	}
	return nil, lastErr
}
