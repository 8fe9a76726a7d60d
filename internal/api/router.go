package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tourmap/internal/api/controllers"
	"tourmap/internal/config"
	"tourmap/pkg/middleware"
	"tourmap/pkg/utils"
)

type Controllers struct {
	Spots      *controllers.SpotsController
	Routes     *controllers.RoutesController
	Categories *controllers.CategoriesController
	Health     *controllers.HealthController
}

func NewControllers(
	spots *controllers.SpotsController,
	routes *controllers.RoutesController,
	categories *controllers.CategoriesController,
	health *controllers.HealthController,
) Controllers {
	return Controllers{Spots: spots, Routes: routes, Categories: categories, Health: health}
}

func ProvideRouter(cfg *config.Config, db *gorm.DB, metrics *middleware.Metrics, ctrl Controllers) *gin.Engine {
	utils.RegisterValidators()

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.MaxMultipartMemory = max(cfg.Media.MaxUploadBytes(), 8<<20)

	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(metrics.Middleware())
	r.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))

	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, "Not found")
	})
	r.NoMethod(func(c *gin.Context) {
		utils.RespondError(c, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.GET("/healthz", ctrl.Health.Healthz)
	r.GET("/metrics", metrics.Handler())

	if strings.HasPrefix(cfg.Media.URLPrefix, "/") {
		r.Static(cfg.Media.URLPrefix, cfg.Media.Root)
	}

	api := r.Group(cfg.Server.APIPrefix)
	api.Use(middleware.Transaction(db))
	RegisterRoutes(api, ctrl, middleware.LimitBody(cfg.Media.MaxRequestBytes()))

	return r
}

// RegisterRoutes mounts the catalog. uploadLimit guards the endpoints that
// accept files.
func RegisterRoutes(r *gin.RouterGroup, ctrl Controllers, uploadLimit gin.HandlerFunc) {
	spots := r.Group("/spots")
	spots.GET("/", ctrl.Spots.ListSpots)
	spots.POST("/", ctrl.Spots.CreateSpot)
	spots.GET("/:id/", ctrl.Spots.GetSpot)
	spots.PUT("/:id/", ctrl.Spots.ReplaceSpot)
	spots.PATCH("/:id/", ctrl.Spots.PatchSpot)
	spots.DELETE("/:id/", ctrl.Spots.DeleteSpot)
	spots.GET("/:id/images/", ctrl.Spots.ListSpotImages)
	spots.POST("/:id/images/", uploadLimit, ctrl.Spots.AddSpotImage)
	spots.DELETE("/:id/images/:imageId/", ctrl.Spots.DeleteSpotImage)

	routes := r.Group("/routes")
	routes.GET("/", ctrl.Routes.ListRoutes)
	routes.POST("/", ctrl.Routes.CreateRoute)
	routes.GET("/:id/", ctrl.Routes.GetRoute)
	routes.PUT("/:id/", ctrl.Routes.ReplaceRoute)
	routes.PATCH("/:id/", ctrl.Routes.PatchRoute)
	routes.DELETE("/:id/", ctrl.Routes.DeleteRoute)

	categories := r.Group("/categories")
	categories.GET("/", ctrl.Categories.ListCategories)
	categories.POST("/", uploadLimit, ctrl.Categories.CreateCategory)
	categories.GET("/:id/", ctrl.Categories.GetCategory)
	categories.PUT("/:id/", uploadLimit, ctrl.Categories.ReplaceCategory)
	categories.PATCH("/:id/", uploadLimit, ctrl.Categories.PatchCategory)
	categories.DELETE("/:id/", ctrl.Categories.DeleteCategory)
}
