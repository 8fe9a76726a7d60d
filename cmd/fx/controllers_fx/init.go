package controllers_fx

import (
	"go.uber.org/fx"

	"tourmap/internal/api"
	"tourmap/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewSpotsController),
	fx.Provide(controllers.NewRoutesController),
	fx.Provide(controllers.NewCategoriesController),
	fx.Provide(controllers.NewHealthController),
	fx.Provide(api.NewControllers))
