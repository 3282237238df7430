// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a zap logger writing to stderr. The json format uses the
// production encoder, console the development one.
func newLogger(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	var config zap.Config
	switch format {
	case "json":
		config = zap.NewProductionConfig()
	case "console":
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		return nil, fmt.Errorf("unsupported --log-format: %s (use 'console' or 'json')", format)
	}
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.Sampling = nil

	return config.Build(zap.AddStacktrace(zap.ErrorLevel))
}
