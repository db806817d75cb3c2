package main

import (
	"github.com/harwood/farmcore/internal/config"
	"github.com/harwood/farmcore/internal/logger"
)

// initLogger wires application config into the shared logger setup.
func initLogger(cfg *config.Config) {
	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		false,
	))
}
