package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tourmap/internal/infra"
	"tourmap/internal/models/db_models"
)

type SpotRepository interface {
	List(ctx context.Context) ([]db_models.Spot, error)
	GetByID(ctx context.Context, id uint) (*db_models.Spot, error)
	Create(ctx context.Context, spot *db_models.Spot) error
	Update(ctx context.Context, spot *db_models.Spot) error
	Delete(ctx context.Context, id uint) error
}

type spotRepository struct {
	db *gorm.DB
}

func NewSpotRepository(db *gorm.DB) SpotRepository {
	return &spotRepository{db: db}
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("spot_images.id")
		})
}

func (r *spotRepository) List(ctx context.Context) ([]db_models.Spot, error) {
	var spots []db_models.Spot
	err := infra.Conn(ctx, r.db).
		Scopes(withRelations).
		Order("spots.id").
		Find(&spots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list spots: %w", err)
	}
	return spots, nil
}

func (r *spotRepository) GetByID(ctx context.Context, id uint) (*db_models.Spot, error) {
	var spot db_models.Spot
	err := infra.Conn(ctx, r.db).
		Scopes(withRelations).
		First(&spot, "spots.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get spot %d: %w", id, err)
	}
	return &spot, nil
}

func (r *spotRepository) Create(ctx context.Context, spot *db_models.Spot) error {
	if err := infra.Conn(ctx, r.db).Omit(clause.Associations).Create(spot).Error; err != nil {
		return fmt.Errorf("failed to create spot: %w", err)
	}
	return nil
}

func (r *spotRepository) Update(ctx context.Context, spot *db_models.Spot) error {
	if err := infra.Conn(ctx, r.db).Omit(clause.Associations).Save(spot).Error; err != nil {
		return fmt.Errorf("failed to update spot %d: %w", spot.ID, err)
	}
	return nil
}

// Delete removes the spot together with its images.
func (r *spotRepository) Delete(ctx context.Context, id uint) error {
	return infra.Conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&db_models.SpotImage{}, "spot_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete images of spot %d: %w", id, err)
		}

		if err := tx.Delete(&db_models.Spot{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete spot %d: %w", id, err)
		}
		return nil
	})
}
