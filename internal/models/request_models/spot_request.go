package request_models

import "mime/multipart"

type SpotRequest struct {
	Name        *string        `json:"name" binding:"required,notblank,max=255"`
	Lat         *float64       `json:"lat" binding:"required"`
	Lng         *float64       `json:"lng" binding:"required"`
	Description *string        `json:"description" binding:"required,notblank"`
	CategoryID  Nullable[uint] `json:"category_id"`
}

// SpotPatchRequest holds the fields of a partial update; nil means unchanged.
type SpotPatchRequest struct {
	Name        *string        `json:"name" binding:"omitempty,notblank,max=255"`
	Lat         *float64       `json:"lat"`
	Lng         *float64       `json:"lng"`
	Description *string        `json:"description" binding:"omitempty,notblank"`
	CategoryID  Nullable[uint] `json:"category_id"`
}

var spotNotNull = []string{"name", "lat", "lng", "description"}

func (SpotRequest) NotNullFields() []string { return spotNotNull }
func (SpotPatchRequest) NotNullFields() []string { return spotNotNull }

// Patch converts a full update into the equivalent partial one.
func (r SpotRequest) Patch() SpotPatchRequest {
	return SpotPatchRequest(r)
}

type SpotImageRequest struct {
	Caption *string               `form:"caption" binding:"omitempty,max=255"`
	Image   *multipart.FileHeader `form:"-"`
}
