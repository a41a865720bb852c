package config

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LogModeDev  = "dev"
	LogModeProd = "prod"
)

// Log selects how the tool reports what it does. Diagnostics always go to
// stderr, stdout is kept for command output.
type Log struct {
	Level string `yaml:"level" json:"level"`
	Mode  string `yaml:"mode"  json:"mode"`
}

var (
	errLogUnknownMode  = errors.New("unknown log mode")
	errLogUnknownLevel = errors.New("unknown log level")
)

func (cfg *Log) Validate() error {
	_, err := cfg.ZapConfig()
	return err
}

// ZapConfig translates the mode into a zap preset (console for dev, json
// for prod) tuned to the requested level.
func (cfg *Log) ZapConfig() (zap.Config, error) {
	var zc zap.Config

	switch cfg.Mode {
	case LogModeDev:
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case LogModeProd:
		zc = zap.NewProductionConfig()
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		return zap.Config{}, fmt.Errorf("%w %q, expected %q or %q",
			errLogUnknownMode, cfg.Mode, LogModeDev, LogModeProd,
		)
	}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return zap.Config{}, fmt.Errorf("%w %q: %w",
			errLogUnknownLevel, cfg.Level, err,
		)
	}
	zc.Level = level
	zc.OutputPaths = []string{"stderr"}

	return zc, nil
}
