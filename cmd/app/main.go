package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"tourmap/cmd/fx/categories_fx"
	"tourmap/cmd/fx/config_fx"
	"tourmap/cmd/fx/controllers_fx"
	"tourmap/cmd/fx/db_fx"
	"tourmap/cmd/fx/media_fx"
	"tourmap/cmd/fx/metrics_fx"
	"tourmap/cmd/fx/routes_fx"
	"tourmap/cmd/fx/spots_fx"
	"tourmap/internal/api"
	"tourmap/internal/config"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	app := fx.New(
		fx.NopLogger,
		config_fx.Module,
		db_fx.Module,
		media_fx.Module,
		metrics_fx.Module,
		categories_fx.Module,
		spots_fx.Module,
		routes_fx.Module,
		controllers_fx.Module,

		fx.Provide(api.ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config, engine *gin.Engine, logger zerolog.Logger) {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", srv.Addr, err)
			}

			go func() {
				logger.Info().Str("addr", srv.Addr).Msg("starting HTTP server")
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error().Err(err).Msg("HTTP server failed")
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
