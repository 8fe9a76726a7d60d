package config_fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"tourmap/internal/config"
	"tourmap/pkg/logging"
)

var Module = fx.Options(
	fx.Provide(config.Load),
	fx.Provide(provideLogger),
)

func provideLogger(cfg *config.Config) zerolog.Logger {
	return logging.Setup(cfg.Log.Level, cfg.Log.Format)
}
