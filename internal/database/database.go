// Package database manages the PostgreSQL connection and schema migrations.
package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/akarpov/pr-reviewer-service/internal/config"
	"github.com/akarpov/pr-reviewer-service/pkg/retry"
)

// Config holds PostgreSQL connection settings.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	TimeZone string
}

// LoadConfig reads connection settings from environment variables.
func LoadConfig() Config {
	return Config{
		Host:     config.Env("DB_HOST", "localhost"),
		Port:     config.Env("DB_PORT", "5432"),
		User:     config.Env("DB_USER", "postgres"),
		Password: config.Env("DB_PASSWORD", "postgres"),
		Name:     config.Env("DB_NAME", "pr_reviewer"),
		SSLMode:  config.Env("DB_SSLMODE", "disable"),
		TimeZone: config.Env("DB_TIMEZONE", "UTC"),
	}
}

// DSN builds the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode, c.TimeZone)
}

// Connect opens a connection using environment configuration.
func Connect(ctx context.Context) (*gorm.DB, error) {
	return ConnectWithConfig(ctx, LoadConfig())
}

// ConnectWithConfig opens a connection, retrying while the database
// is still coming up, and tunes the connection pool.
func ConnectWithConfig(ctx context.Context, cfg Config) (*gorm.DB, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	dsn := cfg.DSN()
	db, err := retry.DoWithResult(ctx, retry.Postgres(), func() (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	})
	if err != nil {
		return nil, sanitize(err, cfg)
	}

	if err := tunePool(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Ping verifies the connection is alive.
func Ping(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database is nil")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the underlying connection pool.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	return sqlDB.Close()
}

func tunePool(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(config.EnvInt("DB_MAX_OPEN_CONNS", 25))
	sqlDB.SetMaxIdleConns(config.EnvInt("DB_MAX_IDLE_CONNS", 5))
	sqlDB.SetConnMaxLifetime(config.EnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute))
	sqlDB.SetConnMaxIdleTime(config.EnvDuration("DB_CONN_MAX_IDLE_TIME", 10*time.Minute))
	return nil
}

// sanitize strips the password from connection errors.
func sanitize(err error, cfg Config) error {
	msg := strings.ReplaceAll(err.Error(), cfg.Password, "***")
	return fmt.Errorf("connect to database: %s", msg)
}
