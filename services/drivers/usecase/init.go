package usecase

import (
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/mrshoofer/mrshoofer/services/drivers"
)

type DriverUC struct {
	driverRepo drivers.DriverRepo
	cfg        *models.Config
}

// NewDriverUC creates a new driver usecase instance
func NewDriverUC(
	driverRepo drivers.DriverRepo,
	cfg *models.Config,
) *DriverUC {
	return &DriverUC{
		driverRepo: driverRepo,
		cfg:        cfg,
	}
}
