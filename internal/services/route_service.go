package services

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"gorm.io/datatypes"

	"tourmap/internal/models/db_models"
	"tourmap/internal/models/request_models"
	"tourmap/internal/models/response_models"
	"tourmap/internal/repositories"
	"tourmap/pkg/utils"
)

type RouteServiceInterface interface {
	ListRoutes(ctx context.Context) ([]response_models.Route, error)
	GetRoute(ctx context.Context, id uint) (response_models.Route, error)
	CreateRoute(ctx context.Context, req request_models.RouteRequest) (response_models.Route, error)
	UpdateRoute(ctx context.Context, id uint, req request_models.RoutePatchRequest) (response_models.Route, error)
	DeleteRoute(ctx context.Context, id uint) error
}

type RouteService struct {
	routeRepo repositories.RouteRepository
}

func NewRouteService(routeRepo repositories.RouteRepository) RouteServiceInterface {
	return &RouteService{routeRepo: routeRepo}
}

func (s *RouteService) ListRoutes(ctx context.Context) ([]response_models.Route, error) {
	routes, err := s.routeRepo.List(ctx)
	if err != nil {
		return nil, databaseError(ctx, err)
	}

	return lo.Map(routes, func(route db_models.Route, _ int) response_models.Route {
		var r response_models.Route
		r.With(&route)
		return r
	}), nil
}

func (s *RouteService) GetRoute(ctx context.Context, id uint) (response_models.Route, error) {
	route, err := s.find(ctx, id)
	if err != nil {
		return response_models.Route{}, err
	}

	var r response_models.Route
	r.With(route)
	return r, nil
}

func (s *RouteService) CreateRoute(ctx context.Context, req request_models.RouteRequest) (response_models.Route, error) {
	route := &db_models.Route{}
	if err := applyRoute(route, req.Patch()); err != nil {
		return response_models.Route{}, err
	}

	if err := s.routeRepo.Create(ctx, route); err != nil {
		return response_models.Route{}, databaseError(ctx, err)
	}

	var r response_models.Route
	r.With(route)
	return r, nil
}

func (s *RouteService) UpdateRoute(ctx context.Context, id uint, req request_models.RoutePatchRequest) (response_models.Route, error) {
	route, err := s.find(ctx, id)
	if err != nil {
		return response_models.Route{}, err
	}

	if err := applyRoute(route, req); err != nil {
		return response_models.Route{}, err
	}

	if err := s.routeRepo.Update(ctx, route); err != nil {
		return response_models.Route{}, databaseError(ctx, err)
	}

	var r response_models.Route
	r.With(route)
	return r, nil
}

func (s *RouteService) DeleteRoute(ctx context.Context, id uint) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}

	if err := s.routeRepo.Delete(ctx, id); err != nil {
		return databaseError(ctx, err)
	}
	return nil
}

func (s *RouteService) find(ctx context.Context, id uint) (*db_models.Route, error) {
	route, err := s.routeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, databaseError(ctx, err)
	}
	if route == nil {
		return nil, utils.ErrRouteNotFound
	}
	return route, nil
}

func applyRoute(route *db_models.Route, req request_models.RoutePatchRequest) error {
	if req.NullCoordinates() {
		return utils.FieldError("coordinates", utils.MsgNotNull)
	}

	if req.Name != nil {
		route.Name = strings.TrimSpace(*req.Name)
	}
	if req.Coordinates != nil {
		route.Coordinates = datatypes.JSON(req.Coordinates)
	}
	return nil
}
