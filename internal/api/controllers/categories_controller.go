package controllers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"tourmap/internal/models/request_models"
	"tourmap/internal/services"
	"tourmap/pkg/media"
	"tourmap/pkg/utils"
)

const (
	msgCategoryNotFound = "Category not found"
	msgNotAFile         = "The submitted data was not a file. Check the encoding type on the form."
)

type CategoriesController struct {
	categoryService services.CategoryServiceInterface
	linking         media.Linking
}

func NewCategoriesController(categoryService services.CategoryServiceInterface, linking media.Linking) *CategoriesController {
	return &CategoriesController{
		categoryService: categoryService,
		linking:         linking,
	}
}

// ListCategories godoc
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {array} response_models.Category
// @Router /categories/ [get]
func (cc *CategoriesController) ListCategories(c *gin.Context) {
	categories, err := cc.categoryService.ListCategories(c.Request.Context(), cc.linking.For(c.Request))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, categories)
}

// CreateCategory godoc
// @Summary Create a category
// @Description Accepts JSON, or a multipart form when an icon is uploaded
// @Tags Categories
// @Accept json,mpfd
// @Produce json
// @Param name formData string true "Category name"
// @Param icon formData file false "Icon image"
// @Success 201 {object} response_models.Category
// @Failure 400 {object} utils.APIResponse
// @Failure 413 {object} utils.APIResponse
// @Router /categories/ [post]
func (cc *CategoriesController) CreateCategory(c *gin.Context) {
	var req request_models.CategoryRequest
	if !cc.bindCategory(c, &req) {
		return
	}

	changes, ok := cc.changes(c, req.Name, req.Icon)
	if !ok {
		return
	}

	category, err := cc.categoryService.CreateCategory(c.Request.Context(), changes, cc.linking.For(c.Request))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, category)
}

// GetCategory godoc
// @Summary Get a category
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} response_models.Category
// @Failure 404 {object} utils.APIResponse
// @Router /categories/{id}/ [get]
func (cc *CategoriesController) GetCategory(c *gin.Context) {
	id, ok := pathID(c, "id", msgCategoryNotFound)
	if !ok {
		return
	}

	category, err := cc.categoryService.GetCategory(c.Request.Context(), id, cc.linking.For(c.Request))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, category)
}

// ReplaceCategory godoc
// @Summary Replace a category
// @Description Full update; an icon left out of a form is kept
// @Tags Categories
// @Accept json,mpfd
// @Produce json
// @Param id path int true "Category ID"
// @Param name formData string true "Category name"
// @Param icon formData file false "Icon image"
// @Success 200 {object} response_models.Category
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 413 {object} utils.APIResponse
// @Router /categories/{id}/ [put]
func (cc *CategoriesController) ReplaceCategory(c *gin.Context) {
	id, ok := pathID(c, "id", msgCategoryNotFound)
	if !ok {
		return
	}

	var req request_models.CategoryRequest
	if !cc.bindCategory(c, &req) {
		return
	}

	cc.update(c, id, req.Patch())
}

// PatchCategory godoc
// @Summary Partially update a category
// @Description JSON null or an empty form value for icon removes it
// @Tags Categories
// @Accept json,mpfd
// @Produce json
// @Param id path int true "Category ID"
// @Param name formData string false "Category name"
// @Param icon formData file false "Icon image"
// @Success 200 {object} response_models.Category
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 413 {object} utils.APIResponse
// @Router /categories/{id}/ [patch]
func (cc *CategoriesController) PatchCategory(c *gin.Context) {
	id, ok := pathID(c, "id", msgCategoryNotFound)
	if !ok {
		return
	}

	var req request_models.CategoryPatchRequest
	if !cc.bindCategory(c, &req) {
		return
	}

	cc.update(c, id, req)
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Spots of the category are kept and lose their category
// @Tags Categories
// @Param id path int true "Category ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /categories/{id}/ [delete]
func (cc *CategoriesController) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c, "id", msgCategoryNotFound)
	if !ok {
		return
	}

	if err := cc.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}

func (cc *CategoriesController) update(c *gin.Context, id uint, req request_models.CategoryPatchRequest) {
	changes, ok := cc.changes(c, req.Name, req.Icon)
	if !ok {
		return
	}

	category, err := cc.categoryService.UpdateCategory(c.Request.Context(), id, changes, cc.linking.For(c.Request))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, category)
}

func (cc *CategoriesController) bindCategory(c *gin.Context, obj any) bool {
	if isForm(c) {
		return bind(c, binding.Form, obj)
	}
	return bind(c, binding.JSON, obj)
}

// changes collects the icon from whichever encoding the request used.
// A form sends the file itself or an empty value to clear it; JSON can
// only clear it with null.
func (cc *CategoriesController) changes(c *gin.Context, name *string, icon request_models.Nullable[string]) (request_models.CategoryChanges, bool) {
	changes := request_models.CategoryChanges{Name: name}

	if !isForm(c) {
		switch {
		case icon.IsNull():
			changes.ClearIcon = true
		case icon.Set:
			utils.RespondValidationError(c, utils.FieldError("icon", msgNotAFile))
			return changes, false
		}
		return changes, true
	}

	var fh *multipart.FileHeader
	err := http.ErrMissingFile
	if c.ContentType() == binding.MIMEMultipartPOSTForm {
		fh, err = c.FormFile("icon")
	}

	switch {
	case err == nil:
		changes.Icon = fh
	case err == http.ErrMissingFile:
		if v, ok := c.GetPostForm("icon"); ok {
			if v != "" {
				utils.RespondValidationError(c, utils.FieldError("icon", msgNotAFile))
				return changes, false
			}
			changes.ClearIcon = true
		}
	default:
		utils.RespondValidationError(c, utils.FieldError("icon", msgNotAFile))
		return changes, false
	}

	return changes, true
}
