package usecase

import (
	"context"
	"strings"

	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/mrshoofer/mrshoofer/internal/utils"
)

// Resolve upserts the passenger identified by input's phone number
func (uc *PassengerUC) Resolve(ctx context.Context, input models.PassengerInput) (*models.Passenger, error) {
	passenger, err := newPassenger(input)
	if err != nil {
		return nil, err
	}

	result, err := uc.passengerRepo.Upsert(ctx, passenger)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to resolve passenger",
			logger.String("phone", utils.MaskPhoneNumber(passenger.PhoneNumber)),
			logger.ErrorField(err))
		return nil, err
	}
	return result, nil
}

// Register creates the passenger when its phone number is unknown. An
// existing passenger is returned as stored.
func (uc *PassengerUC) Register(ctx context.Context, input models.PassengerInput) (*models.RegisterResult, error) {
	passenger, err := newPassenger(input)
	if err != nil {
		return nil, err
	}

	result, created, err := uc.passengerRepo.CreateIfAbsent(ctx, passenger)
	if err != nil {
		return nil, err
	}

	if created {
		logger.InfoCtx(ctx, "Passenger registered",
			logger.String("passenger_id", result.ID.String()),
			logger.String("phone", utils.MaskPhoneNumber(result.PhoneNumber)))
	}
	return &models.RegisterResult{Passenger: result, IsNew: created}, nil
}

// Lookup finds a passenger by any accepted spelling of the phone number
func (uc *PassengerUC) Lookup(ctx context.Context, phone string) (*models.Passenger, error) {
	normalized := utils.NormalizePhone(phone)
	if normalized == "" {
		return nil, apperrors.MissingField("phone", "Phone number is required")
	}
	return uc.passengerRepo.GetByPhone(ctx, normalized)
}

func newPassenger(input models.PassengerInput) (*models.Passenger, error) {
	phone := utils.NormalizePhone(input.PhoneNumber)
	if phone == "" {
		return nil, apperrors.MissingField("passenger.NumberPhone", "Passenger phone number is required")
	}

	passenger := &models.Passenger{
		FirstName:   strings.TrimSpace(input.FirstName),
		LastName:    strings.TrimSpace(input.LastName),
		PhoneNumber: phone,
	}
	if code := strings.TrimSpace(input.NationalCode); code != "" {
		passenger.NationalCode = &code
	}
	return passenger, nil
}
