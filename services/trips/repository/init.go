package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
)

// TripRepo implements trips.TripRepo on Postgres
type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepo creates a new trip repository
func NewTripRepo(cfg *models.Config, db *sqlx.DB) *TripRepo {
	return &TripRepo{cfg: cfg, db: db}
}
