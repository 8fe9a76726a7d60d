package routes_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tourmap/internal/repositories"
	"tourmap/internal/services"
)

var Module = fx.Provide(
	provideRouteRepo, provideRouteService)

func provideRouteRepo(db *gorm.DB) repositories.RouteRepository {
	return repositories.NewRouteRepository(db)
}

func provideRouteService(routeRepo repositories.RouteRepository) services.RouteServiceInterface {
	return services.NewRouteService(routeRepo)
}
