package spots_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tourmap/internal/repositories"
	"tourmap/internal/services"
)

var Module = fx.Provide(
	provideSpotRepo,
	provideSpotImageRepo,
	provideSpotService,
)

func provideSpotRepo(db *gorm.DB) repositories.SpotRepository {
	return repositories.NewSpotRepository(db)
}

func provideSpotImageRepo(db *gorm.DB) repositories.SpotImageRepository {
	return repositories.NewSpotImageRepository(db)
}

func provideSpotService(
	spotRepo repositories.SpotRepository,
	imageRepo repositories.SpotImageRepository,
	categoryRepo repositories.CategoryRepository,
	uploader *services.Uploader,
) services.SpotServiceInterface {
	return services.NewSpotService(spotRepo, imageRepo, categoryRepo, uploader)
}
