package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"tourmap/internal/models/request_models"
	"tourmap/internal/services"
	"tourmap/pkg/utils"
)

const msgRouteNotFound = "Route not found"

type RoutesController struct {
	routeService services.RouteServiceInterface
}

func NewRoutesController(routeService services.RouteServiceInterface) *RoutesController {
	return &RoutesController{
		routeService: routeService,
	}
}

// ListRoutes godoc
// @Summary List routes
// @Tags Routes
// @Produce json
// @Success 200 {array} response_models.Route
// @Router /routes/ [get]
func (r *RoutesController) ListRoutes(c *gin.Context) {
	routes, err := r.routeService.ListRoutes(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, routes)
}

// CreateRoute godoc
// @Summary Create a route
// @Description coordinates is stored and echoed back as sent
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body request_models.RouteRequest true "Route payload"
// @Success 201 {object} response_models.Route
// @Failure 400 {object} utils.APIResponse
// @Router /routes/ [post]
func (r *RoutesController) CreateRoute(c *gin.Context) {
	var req request_models.RouteRequest
	if !bind(c, binding.JSON, &req) {
		return
	}

	route, err := r.routeService.CreateRoute(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, route)
}

// GetRoute godoc
// @Summary Get a route
// @Tags Routes
// @Produce json
// @Param id path int true "Route ID"
// @Success 200 {object} response_models.Route
// @Failure 404 {object} utils.APIResponse
// @Router /routes/{id}/ [get]
func (r *RoutesController) GetRoute(c *gin.Context) {
	id, ok := pathID(c, "id", msgRouteNotFound)
	if !ok {
		return
	}

	route, err := r.routeService.GetRoute(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, route)
}

// ReplaceRoute godoc
// @Summary Replace a route
// @Tags Routes
// @Accept json
// @Produce json
// @Param id path int true "Route ID"
// @Param request body request_models.RouteRequest true "Route payload"
// @Success 200 {object} response_models.Route
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /routes/{id}/ [put]
func (r *RoutesController) ReplaceRoute(c *gin.Context) {
	id, ok := pathID(c, "id", msgRouteNotFound)
	if !ok {
		return
	}

	var req request_models.RouteRequest
	if !bind(c, binding.JSON, &req) {
		return
	}

	route, err := r.routeService.UpdateRoute(c.Request.Context(), id, req.Patch())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, route)
}

// PatchRoute godoc
// @Summary Partially update a route
// @Tags Routes
// @Accept json
// @Produce json
// @Param id path int true "Route ID"
// @Param request body request_models.RoutePatchRequest true "Fields to change"
// @Success 200 {object} response_models.Route
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /routes/{id}/ [patch]
func (r *RoutesController) PatchRoute(c *gin.Context) {
	id, ok := pathID(c, "id", msgRouteNotFound)
	if !ok {
		return
	}

	var req request_models.RoutePatchRequest
	if !bind(c, binding.JSON, &req) {
		return
	}

	route, err := r.routeService.UpdateRoute(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, route)
}

// DeleteRoute godoc
// @Summary Delete a route
// @Tags Routes
// @Param id path int true "Route ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /routes/{id}/ [delete]
func (r *RoutesController) DeleteRoute(c *gin.Context) {
	id, ok := pathID(c, "id", msgRouteNotFound)
	if !ok {
		return
	}

	if err := r.routeService.DeleteRoute(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}
