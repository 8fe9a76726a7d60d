package db_fx

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tourmap/internal/config"
	"tourmap/internal/infra"
)

var Module = fx.Provide(
	provideDB)

// provideDB depends on the logger so gorm logs through the configured writer.
func provideDB(lc fx.Lifecycle, cfg *config.Config, _ zerolog.Logger) (*gorm.DB, error) {
	db, err := infra.Open(cfg.Database)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return infra.Close(db)
		},
	})

	return db, nil
}
