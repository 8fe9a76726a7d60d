package request_models

import (
	"bytes"
	"encoding/json"
)

type RouteRequest struct {
	Name        *string         `json:"name" binding:"required,notblank,max=255"`
	Coordinates json.RawMessage `json:"coordinates" binding:"required"`
}

type RoutePatchRequest struct {
	Name        *string         `json:"name" binding:"omitempty,notblank,max=255"`
	Coordinates json.RawMessage `json:"coordinates"`
}

var routeNotNull = []string{"name", "coordinates"}

func (RouteRequest) NotNullFields() []string { return routeNotNull }
func (RoutePatchRequest) NotNullFields() []string { return routeNotNull }

func (r RouteRequest) Patch() RoutePatchRequest {
	return RoutePatchRequest(r)
}

// NullCoordinates reports an explicit JSON null for coordinates.
func (r RoutePatchRequest) NullCoordinates() bool {
	return bytes.Equal(bytes.TrimSpace(r.Coordinates), []byte("null"))
}
