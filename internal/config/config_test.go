package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := Load()

		assert.Equal(t, "8080", cfg.HTTP.Port)
		assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "release", cfg.GinMode)
		require.NoError(t, cfg.Validate())
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("SERVER_READ_TIMEOUT", "5s")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "console")

		cfg := Load()

		assert.Equal(t, "9090", cfg.HTTP.Port)
		assert.Equal(t, 5*time.Second, cfg.HTTP.ReadTimeout)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
		require.NoError(t, cfg.Validate())
	})

	t.Run("bad duration falls back to default", func(t *testing.T) {
		t.Setenv("SERVER_READ_TIMEOUT", "soon")

		cfg := Load()
		assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	})
}

func TestAddr(t *testing.T) {
	assert.Equal(t, ":8080", HTTPConfig{Port: "8080"}.Addr())
	assert.Equal(t, "127.0.0.1:9090", HTTPConfig{Host: "127.0.0.1", Port: "9090"}.Addr())
}

func TestValidate(t *testing.T) {
	valid := Load()

	t.Run("bad log level", func(t *testing.T) {
		cfg := valid
		cfg.Log.Level = "verbose"
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad log format", func(t *testing.T) {
		cfg := valid
		cfg.Log.Format = "xml"
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad gin mode", func(t *testing.T) {
		cfg := valid
		cfg.GinMode = "production"
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero timeout", func(t *testing.T) {
		cfg := valid
		cfg.HTTP.ReadTimeout = 0
		assert.Error(t, cfg.Validate())
	})
}
