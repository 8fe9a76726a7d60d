package media_fx

import (
	"go.uber.org/fx"

	"tourmap/internal/config"
	"tourmap/internal/services"
	"tourmap/pkg/media"
)

var Module = fx.Provide(
	provideStorage,
	provideLinking,
	provideUploader,
)

func provideStorage(cfg *config.Config) media.Storage {
	return media.NewLocalStorage(cfg.Media.Root)
}

func provideLinking(cfg *config.Config) media.Linking {
	return media.NewLinking(cfg.Media.URLPrefix, cfg.Media.TrustForwardedHeaders)
}

func provideUploader(cfg *config.Config, storage media.Storage) *services.Uploader {
	return services.NewUploader(storage, cfg.Media.MaxUploadBytes())
}
