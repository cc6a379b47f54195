// Package logger builds the application logger on top of zap.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/akarpov/pr-reviewer-service/internal/config"
)

// New builds a SugaredLogger from environment configuration.
func New() (*zap.SugaredLogger, error) {
	return NewWithConfig(config.LoadLogConfig())
}

// NewWithConfig builds a SugaredLogger from the given configuration.
func NewWithConfig(cfg config.LogConfig) (*zap.SugaredLogger, error) {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{"stdout"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}

	l, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
