package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/mrshoofer/mrshoofer/internal/utils"
	"github.com/mrshoofer/mrshoofer/services/passengers"
)

// PassengerHandler serves partner passenger registration
type PassengerHandler struct {
	passengerUC passengers.PassengerUC
	cfg         *models.Config
}

// NewPassengerHandler creates a new passenger handler
func NewPassengerHandler(
	passengerUC passengers.PassengerUC,
	cfg *models.Config,
) *PassengerHandler {
	return &PassengerHandler{
		passengerUC: passengerUC,
		cfg:         cfg,
	}
}

type registerResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Passenger *models.Passenger `json:"passenger"`
	IsNew     bool              `json:"isNew"`
}

type lookupResponse struct {
	Exists    bool              `json:"exists"`
	Message   string            `json:"message,omitempty"`
	Passenger *models.Passenger `json:"passenger,omitempty"`
}

// Register creates the passenger if the phone number is new.
// POST and PUT share this handler.
func (h *PassengerHandler) Register(c echo.Context) error {
	body, err := utils.DecodeObject(c.Request().Body)
	if err != nil {
		logger.Warn("Invalid request payload for passenger registration",
			logger.ErrorField(err),
			logger.String("endpoint", "Register"),
		)
		return utils.AppErrorResponse(c, apperrors.InvalidPayload("Invalid request payload", err), h.cfg.App.Debug)
	}

	input := PassengerInputFrom(body)
	if input.PhoneNumber == "" {
		return utils.AppErrorResponse(c,
			apperrors.MissingField("NumberPhone", "Passenger phone number is required"), h.cfg.App.Debug)
	}

	result, err := h.passengerUC.Register(c.Request().Context(), input)
	if err != nil {
		logger.Error("Failed to register passenger",
			logger.ErrorField(err),
			logger.String("phone", utils.MaskPhoneNumber(input.PhoneNumber)),
		)
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}

	if result.IsNew {
		return c.JSON(http.StatusCreated, registerResponse{
			Success:   true,
			Message:   "Passenger registered successfully",
			Passenger: result.Passenger,
			IsNew:     true,
		})
	}
	return c.JSON(http.StatusOK, registerResponse{
		Success:   true,
		Message:   "Passenger already registered",
		Passenger: result.Passenger,
		IsNew:     false,
	})
}

// Lookup reports whether a passenger exists for ?phone= (or ?NumberPhone=)
func (h *PassengerHandler) Lookup(c echo.Context) error {
	phone := c.QueryParam("phone")
	if phone == "" {
		phone = c.QueryParam("NumberPhone")
	}
	if phone == "" {
		return utils.AppErrorResponse(c,
			apperrors.MissingField("phone", "Phone number is required"), h.cfg.App.Debug)
	}

	passenger, err := h.passengerUC.Lookup(c.Request().Context(), phone)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.JSON(http.StatusNotFound, lookupResponse{
				Exists:  false,
				Message: "Passenger not found",
			})
		}
		logger.Error("Failed to look up passenger", logger.ErrorField(err))
		return utils.AppErrorResponse(c, err, h.cfg.App.Debug)
	}

	return c.JSON(http.StatusOK, lookupResponse{Exists: true, Passenger: passenger})
}

// PassengerInputFrom extracts a passenger from a partner object whose keys
// may arrive in any case
func PassengerInputFrom(m map[string]interface{}) models.PassengerInput {
	return models.PassengerInput{
		PhoneNumber:  utils.StringField(m, "NumberPhone", "numberPhone", "numberphone", "phone", "phoneNumber"),
		FirstName:    utils.StringField(m, "Firstname", "firstName", "firstname"),
		LastName:     utils.StringField(m, "Lastname", "lastName", "lastname"),
		NationalCode: utils.StringField(m, "NaCode", "naCode", "nacode", "nationalCode"),
	}
}
