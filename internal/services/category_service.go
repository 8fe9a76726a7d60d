package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"tourmap/internal/models/db_models"
	"tourmap/internal/models/request_models"
	"tourmap/internal/models/response_models"
	"tourmap/internal/repositories"
	"tourmap/pkg/logging"
	"tourmap/pkg/media"
	"tourmap/pkg/utils"
)

const msgCategoryNameTaken = "category with this name already exists."

type CategoryServiceInterface interface {
	ListCategories(ctx context.Context, links media.Linker) ([]response_models.Category, error)
	GetCategory(ctx context.Context, id uint, links media.Linker) (response_models.Category, error)
	CreateCategory(ctx context.Context, changes request_models.CategoryChanges, links media.Linker) (response_models.Category, error)
	UpdateCategory(ctx context.Context, id uint, changes request_models.CategoryChanges, links media.Linker) (response_models.Category, error)
	DeleteCategory(ctx context.Context, id uint) error
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	uploader     *Uploader
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, uploader *Uploader) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo: categoryRepo,
		uploader:     uploader,
	}
}

func (s *CategoryService) ListCategories(ctx context.Context, links media.Linker) ([]response_models.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, databaseError(ctx, err)
	}

	return lo.Map(categories, func(c db_models.Category, _ int) response_models.Category {
		var r response_models.Category
		r.With(&c, links)
		return r
	}), nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id uint, links media.Linker) (response_models.Category, error) {
	category, err := s.find(ctx, id)
	if err != nil {
		return response_models.Category{}, err
	}

	var r response_models.Category
	r.With(category, links)
	return r, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, changes request_models.CategoryChanges, links media.Linker) (response_models.Category, error) {
	category := &db_models.Category{}
	if err := s.apply(ctx, category, changes); err != nil {
		return response_models.Category{}, err
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return response_models.Category{}, categoryWriteError(ctx, err)
	}

	var r response_models.Category
	r.With(category, links)
	return r, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, changes request_models.CategoryChanges, links media.Linker) (response_models.Category, error) {
	category, err := s.find(ctx, id)
	if err != nil {
		return response_models.Category{}, err
	}

	if err := s.apply(ctx, category, changes); err != nil {
		return response_models.Category{}, err
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return response_models.Category{}, categoryWriteError(ctx, err)
	}

	var r response_models.Category
	r.With(category, links)
	return r, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return databaseError(ctx, err)
	}

	logger := logging.GetFromContext(ctx)
	logger.Info().Uint("category_id", id).Msg("category deleted")
	return nil
}

func (s *CategoryService) find(ctx context.Context, id uint) (*db_models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, databaseError(ctx, err)
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}
	return category, nil
}

// apply validates changes against the stored state and copies them onto
// category. The icon is only stored once the name is known to be free.
func (s *CategoryService) apply(ctx context.Context, category *db_models.Category, changes request_models.CategoryChanges) error {
	if changes.Name != nil {
		name := strings.TrimSpace(*changes.Name)

		taken, err := s.categoryRepo.ExistsByName(ctx, name, category.ID)
		if err != nil {
			return databaseError(ctx, err)
		}
		if taken {
			return utils.FieldError("name", msgCategoryNameTaken)
		}
		category.Name = name
	}

	switch {
	case changes.Icon != nil:
		icon, err := s.uploader.SaveImage(ctx, "icon", media.CategoryIconsDir, changes.Icon)
		if err != nil {
			return err
		}
		category.Icon = icon
	case changes.ClearIcon:
		category.Icon = ""
	}

	return nil
}

func categoryWriteError(ctx context.Context, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.FieldError("name", msgCategoryNameTaken)
	}
	return databaseError(ctx, err)
}

// databaseError logs the cause and hides it behind ErrDatabaseError.
func databaseError(ctx context.Context, err error) error {
	logger := logging.GetFromContext(ctx)
	logger.Error().Err(err).Msg("database operation failed")
	return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
}
