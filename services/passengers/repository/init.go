package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
)

// PassengerRepo implements passengers.PassengerRepo on Postgres
type PassengerRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPassengerRepo creates a new passenger repository
func NewPassengerRepo(cfg *models.Config, db *sqlx.DB) *PassengerRepo {
	return &PassengerRepo{cfg: cfg, db: db}
}
