// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"net"
	"strings"
	"time"
)

// Config is the full application configuration.
type Config struct {
	HTTP    HTTPConfig
	Log     LogConfig
	GinMode string
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string
	// Format is json or console.
	Format string
}

// Load reads the full configuration from environment variables.
func Load() Config {
	return Config{
		HTTP:    LoadHTTPConfig(),
		Log:     LoadLogConfig(),
		GinMode: Env("GIN_MODE", "release"),
	}
}

// LoadHTTPConfig reads HTTP server settings from environment variables.
func LoadHTTPConfig() HTTPConfig {
	return HTTPConfig{
		Host:         Env("SERVER_HOST", ""),
		Port:         Env("SERVER_PORT", "8080"),
		ReadTimeout:  EnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout: EnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:  EnvDuration("SERVER_IDLE_TIMEOUT", 2*time.Minute),
	}
}

// LoadLogConfig reads logger settings from environment variables.
func LoadLogConfig() LogConfig {
	return LogConfig{
		Level:  Env("LOG_LEVEL", "info"),
		Format: Env("LOG_FORMAT", "json"),
	}
}

// Addr returns the listen address in host:port form.
func (c HTTPConfig) Addr() string {
	return net.JoinHostPort(c.Host, strings.TrimPrefix(c.Port, ":"))
}

// Validate checks the configuration for obvious mistakes.
func (c Config) Validate() error {
	if c.HTTP.ReadTimeout <= 0 || c.HTTP.WriteTimeout <= 0 || c.HTTP.IdleTimeout <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL: %s", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid LOG_FORMAT: %s", c.Log.Format)
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid GIN_MODE: %s", c.GinMode)
	}
	return nil
}
