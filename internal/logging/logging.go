// Package logging builds the zap logger used across studyboard.
package logging

import (
	"fmt"

	"github.com/alexanderramin/studyboard/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger from cfg. When cfg.LogFile is set, output goes to
// that file. Otherwise it goes to stderr if console is true, and is
// discarded if not (the TUI owns the terminal).
func New(cfg config.Config, console bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	if cfg.LogFile == "" && !console {
		return zap.NewNop(), nil
	}

	var zcfg zap.Config
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
		if cfg.LogFile == "" {
			zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	if cfg.LogFile != "" {
		zcfg.OutputPaths = []string{cfg.LogFile}
		zcfg.ErrorOutputPaths = []string{cfg.LogFile}
	}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}
