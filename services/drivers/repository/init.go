package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
)

// DriverRepo implements the drivers.DriverRepo interface
type DriverRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewDriverRepo creates a new driver repository
func NewDriverRepo(cfg *models.Config, db *sqlx.DB) *DriverRepo {
	return &DriverRepo{
		cfg: cfg,
		db:  db,
	}
}
