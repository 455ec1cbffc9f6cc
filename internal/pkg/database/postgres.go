package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	_ "github.com/jackc/pgx/v4/stdlib" // registers the "pgx" database/sql driver
	"github.com/jmoiron/sqlx"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
)

// PostgresClient represents a PostgreSQL database client
type PostgresClient struct {
	db *sqlx.DB
}

// DSN builds the pgx connection URL for config
func DSN(config models.DatabaseConfig) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(config.Username, config.Password),
		Host:   fmt.Sprintf("%s:%d", config.Host, config.Port),
		Path:   "/" + config.Database,
	}
	q := u.Query()
	if config.SSLMode != "" {
		q.Set("sslmode", config.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// NewPostgresClient opens a pooled connection and pings it
func NewPostgresClient(config models.DatabaseConfig) (*PostgresClient, error) {
	db, err := sqlx.Open("pgx", DSN(config))
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	if config.MaxConns > 0 {
		db.SetMaxOpenConns(config.MaxConns)
	}
	if config.IdleConns > 0 {
		db.SetMaxIdleConns(config.IdleConns)
	}
	db.SetConnMaxLifetime(1 * time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return &PostgresClient{db: db}, nil
}

// NewPostgresClientFromDB wraps an existing handle, used by tests
func NewPostgresClientFromDB(db *sqlx.DB) *PostgresClient {
	return &PostgresClient{db: db}
}

// GetDB returns the underlying sqlx handle
func (p *PostgresClient) GetDB() *sqlx.DB {
	return p.db
}

// Ping runs SELECT 1 against the database
func (p *PostgresClient) Ping(ctx context.Context) error {
	var one int
	return p.db.GetContext(ctx, &one, "SELECT 1")
}

// Close closes the database connection pool
func (p *PostgresClient) Close() error {
	return p.db.Close()
}
