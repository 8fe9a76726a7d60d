package request_models

import "mime/multipart"

// CategoryRequest is accepted as JSON or as a multipart form. The icon file
// itself only arrives through the form and is read by the controller.
type CategoryRequest struct {
	Name *string          `json:"name" form:"name" binding:"required,notblank,max=255"`
	Icon Nullable[string] `json:"icon" form:"-"`
}

type CategoryPatchRequest struct {
	Name *string          `json:"name" form:"name" binding:"omitempty,notblank,max=255"`
	Icon Nullable[string] `json:"icon" form:"-"`
}

// NotNullFields leaves icon out: null clears it.
func (CategoryRequest) NotNullFields() []string { return []string{"name"} }
func (CategoryPatchRequest) NotNullFields() []string { return []string{"name"} }

func (r CategoryRequest) Patch() CategoryPatchRequest {
	return CategoryPatchRequest(r)
}

// CategoryChanges is the normalized form handed to the category service.
type CategoryChanges struct {
	Name      *string
	Icon      *multipart.FileHeader
	ClearIcon bool
}
