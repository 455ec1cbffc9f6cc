package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/mrshoofer/mrshoofer/internal/pkg/database"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
)

// AdminRepo implements admins.AdminRepo on Postgres
type AdminRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewAdminRepo creates a new admin repository
func NewAdminRepo(cfg *models.Config, db *sqlx.DB) *AdminRepo {
	return &AdminRepo{cfg: cfg, db: db}
}

// OTPStore implements admins.OTPStore on Redis
type OTPStore struct {
	redisClient *database.RedisClient
}

// NewOTPStore creates a Redis backed OTP store
func NewOTPStore(redisClient *database.RedisClient) *OTPStore {
	return &OTPStore{redisClient: redisClient}
}
