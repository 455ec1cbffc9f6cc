package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
)

// NotificationRepo implements the notifications.NotificationRepo interface
type NotificationRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewNotificationRepo creates a new notification repository
func NewNotificationRepo(cfg *models.Config, db *sqlx.DB) *NotificationRepo {
	return &NotificationRepo{
		cfg: cfg,
		db:  db,
	}
}
