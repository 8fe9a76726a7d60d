package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tourmap/internal/infra"
	"tourmap/internal/models/db_models"
)

type RouteRepository interface {
	List(ctx context.Context) ([]db_models.Route, error)
	GetByID(ctx context.Context, id uint) (*db_models.Route, error)
	Create(ctx context.Context, route *db_models.Route) error
	Update(ctx context.Context, route *db_models.Route) error
	Delete(ctx context.Context, id uint) error
}

type routeRepository struct {
	db *gorm.DB
}

func NewRouteRepository(db *gorm.DB) RouteRepository {
	return &routeRepository{db: db}
}

func (r *routeRepository) List(ctx context.Context) ([]db_models.Route, error) {
	var routes []db_models.Route
	if err := infra.Conn(ctx, r.db).Order("id").Find(&routes).Error; err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	return routes, nil
}

func (r *routeRepository) GetByID(ctx context.Context, id uint) (*db_models.Route, error) {
	var route db_models.Route
	err := infra.Conn(ctx, r.db).First(&route, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get route %d: %w", id, err)
	}
	return &route, nil
}

func (r *routeRepository) Create(ctx context.Context, route *db_models.Route) error {
	if err := infra.Conn(ctx, r.db).Create(route).Error; err != nil {
		return fmt.Errorf("failed to create route: %w", err)
	}
	return nil
}

func (r *routeRepository) Update(ctx context.Context, route *db_models.Route) error {
	if err := infra.Conn(ctx, r.db).Save(route).Error; err != nil {
		return fmt.Errorf("failed to update route %d: %w", route.ID, err)
	}
	return nil
}

func (r *routeRepository) Delete(ctx context.Context, id uint) error {
	if err := infra.Conn(ctx, r.db).Delete(&db_models.Route{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete route %d: %w", id, err)
	}
	return nil
}
