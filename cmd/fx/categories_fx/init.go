package categories_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tourmap/internal/repositories"
	"tourmap/internal/services"
)

var Module = fx.Provide(
	provideCategoryRepo, provideCategoryService)

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepository {
	return repositories.NewCategoryRepository(db)
}

func provideCategoryService(categoryRepo repositories.CategoryRepository, uploader *services.Uploader) services.CategoryServiceInterface {
	return services.NewCategoryService(categoryRepo, uploader)
}
