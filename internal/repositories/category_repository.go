package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tourmap/internal/infra"
	"tourmap/internal/models/db_models"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]db_models.Category, error)
	GetByID(ctx context.Context, id uint) (*db_models.Category, error)
	FindByName(ctx context.Context, name string) (*db_models.Category, error)
	ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error)
	Create(ctx context.Context, category *db_models.Category) error
	Update(ctx context.Context, category *db_models.Category) error
	Delete(ctx context.Context, id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context) ([]db_models.Category, error) {
	var categories []db_models.Category
	if err := infra.Conn(ctx, r.db).Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*db_models.Category, error) {
	var category db_models.Category
	err := infra.Conn(ctx, r.db).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category %d: %w", id, err)
	}
	return &category, nil
}

func (r *categoryRepository) FindByName(ctx context.Context, name string) (*db_models.Category, error) {
	var category db_models.Category
	err := infra.Conn(ctx, r.db).First(&category, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find category %q: %w", name, err)
	}
	return &category, nil
}

func (r *categoryRepository) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	var count int64
	q := infra.Conn(ctx, r.db).Model(&db_models.Category{}).Where("name = ?", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check category name: %w", err)
	}
	return count > 0, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *db_models.Category) error {
	if err := infra.Conn(ctx, r.db).Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *categoryRepository) Update(ctx context.Context, category *db_models.Category) error {
	if err := infra.Conn(ctx, r.db).Save(category).Error; err != nil {
		return fmt.Errorf("failed to update category %d: %w", category.ID, err)
	}
	return nil
}

// Delete removes the category and detaches its spots.
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	return infra.Conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&db_models.Spot{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach spots from category %d: %w", id, err)
		}

		if err := tx.Delete(&db_models.Category{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete category %d: %w", id, err)
		}
		return nil
	})
}
