package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tourmap/internal/infra"
	"tourmap/internal/models/db_models"
)

type SpotImageRepository interface {
	ListBySpot(ctx context.Context, spotID uint) ([]db_models.SpotImage, error)
	GetByID(ctx context.Context, spotID, id uint) (*db_models.SpotImage, error)
	Create(ctx context.Context, image *db_models.SpotImage) error
	Delete(ctx context.Context, spotID, id uint) error
}

type spotImageRepository struct {
	db *gorm.DB
}

func NewSpotImageRepository(db *gorm.DB) SpotImageRepository {
	return &spotImageRepository{db: db}
}

func (r *spotImageRepository) ListBySpot(ctx context.Context, spotID uint) ([]db_models.SpotImage, error) {
	var images []db_models.SpotImage
	err := infra.Conn(ctx, r.db).
		Where("spot_id = ?", spotID).
		Order("id").
		Find(&images).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list images of spot %d: %w", spotID, err)
	}
	return images, nil
}

func (r *spotImageRepository) GetByID(ctx context.Context, spotID, id uint) (*db_models.SpotImage, error) {
	var image db_models.SpotImage
	err := infra.Conn(ctx, r.db).First(&image, "id = ? AND spot_id = ?", id, spotID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get spot image %d: %w", id, err)
	}
	return &image, nil
}

func (r *spotImageRepository) Create(ctx context.Context, image *db_models.SpotImage) error {
	if err := infra.Conn(ctx, r.db).Create(image).Error; err != nil {
		return fmt.Errorf("failed to create spot image: %w", err)
	}
	return nil
}

func (r *spotImageRepository) Delete(ctx context.Context, spotID, id uint) error {
	err := infra.Conn(ctx, r.db).Delete(&db_models.SpotImage{}, "id = ? AND spot_id = ?", id, spotID).Error
	if err != nil {
		return fmt.Errorf("failed to delete spot image %d: %w", id, err)
	}
	return nil
}
