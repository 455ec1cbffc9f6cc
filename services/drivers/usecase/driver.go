package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/mrshoofer/mrshoofer/internal/pkg/apperrors"
	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/mrshoofer/mrshoofer/internal/utils"
)

// ListDrivers returns drivers matching search, or all drivers
func (uc *DriverUC) ListDrivers(ctx context.Context, search string) ([]*models.Driver, error) {
	return uc.driverRepo.List(ctx, search)
}

// GetDriver returns one driver
func (uc *DriverUC) GetDriver(ctx context.Context, id uuid.UUID) (*models.Driver, error) {
	return uc.driverRepo.GetByID(ctx, id)
}

// CreateDriver registers a driver; every field is required
func (uc *DriverUC) CreateDriver(ctx context.Context, req models.DriverRequest) (*models.Driver, error) {
	driver, err := newDriver(req)
	if err != nil {
		return nil, err
	}

	if err := uc.driverRepo.Create(ctx, driver); err != nil {
		logger.ErrorCtx(ctx, "Failed to create driver",
			logger.String("phone", utils.MaskPhoneNumber(driver.PhoneNumber)),
			logger.ErrorField(err))
		return nil, err
	}

	logger.InfoCtx(ctx, "Driver created", logger.String("driver_id", driver.ID.String()))
	return driver, nil
}

// UpdateDriver replaces the driver's details
func (uc *DriverUC) UpdateDriver(ctx context.Context, id uuid.UUID, req models.DriverRequest) (*models.Driver, error) {
	driver, err := newDriver(req)
	if err != nil {
		return nil, err
	}
	driver.ID = id

	updated, err := uc.driverRepo.Update(ctx, driver)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Driver updated", logger.String("driver_id", id.String()))
	return updated, nil
}

// DeleteDriver removes the driver; its trips become unassigned
func (uc *DriverUC) DeleteDriver(ctx context.Context, id uuid.UUID) error {
	if err := uc.driverRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.InfoCtx(ctx, "Driver deleted", logger.String("driver_id", id.String()))
	return nil
}

func newDriver(req models.DriverRequest) (*models.Driver, error) {
	driver := &models.Driver{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		PhoneNumber: utils.NormalizePhone(req.PhoneNumber),
		CarName:     strings.TrimSpace(req.CarName),
	}

	switch {
	case driver.FirstName == "":
		return nil, apperrors.MissingField("firstName", "All driver fields are required")
	case driver.LastName == "":
		return nil, apperrors.MissingField("lastName", "All driver fields are required")
	case driver.PhoneNumber == "":
		return nil, apperrors.MissingField("phoneNumber", "All driver fields are required")
	case driver.CarName == "":
		return nil, apperrors.MissingField("carName", "All driver fields are required")
	}
	return driver, nil
}
