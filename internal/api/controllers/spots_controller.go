package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"tourmap/internal/models/request_models"
	"tourmap/internal/services"
	"tourmap/pkg/media"
	"tourmap/pkg/utils"
)

const (
	msgSpotNotFound      = "Spot not found"
	msgSpotImageNotFound = "Spot image not found"
)

type SpotsController struct {
	spotService services.SpotServiceInterface
	linking     media.Linking
}

func NewSpotsController(spotService services.SpotServiceInterface, linking media.Linking) *SpotsController {
	return &SpotsController{
		spotService: spotService,
		linking:     linking,
	}
}

// ListSpots godoc
// @Summary List spots
// @Description All spots with their category and images
// @Tags Spots
// @Produce json
// @Success 200 {array} response_models.Spot
// @Router /spots/ [get]
func (s *SpotsController) ListSpots(c *gin.Context) {
	spots, err := s.spotService.ListSpots(c.Request.Context(), s.linking.For(c.Request))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, spots)
}

// CreateSpot godoc
// @Summary Create a spot
// @Tags Spots
// @Accept json
// @Produce json
// @Param request body request_models.SpotRequest true "Spot payload"
// @Success 201 {object} response_models.Spot
// @Failure 400 {object} utils.APIResponse
// @Router /spots/ [post]
func (s *SpotsController) CreateSpot(c *gin.Context) {
	var req request_models.SpotRequest
	if !bind(c, binding.JSON, &req) {
		return
	}

	spot, err := s.spotService.CreateSpot(c.Request.Context(), req, s.linking.For(c.Request))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, spot)
}

// GetSpot godoc
// @Summary Get a spot
// @Tags Spots
// @Produce json
// @Param id path int true "Spot ID"
// @Success 200 {object} response_models.Spot
// @Failure 404 {object} utils.APIResponse
// @Router /spots/{id}/ [get]
func (s *SpotsController) GetSpot(c *gin.Context) {
	id, ok := pathID(c, "id", msgSpotNotFound)
	if !ok {
		return
	}

	spot, err := s.spotService.GetSpot(c.Request.Context(), id, s.linking.For(c.Request))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, spot)
}

// ReplaceSpot godoc
// @Summary Replace a spot
// @Description Full update, every required field must be sent
// @Tags Spots
// @Accept json
// @Produce json
// @Param id path int true "Spot ID"
// @Param request body request_models.SpotRequest true "Spot payload"
// @Success 200 {object} response_models.Spot
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /spots/{id}/ [put]
func (s *SpotsController) ReplaceSpot(c *gin.Context) {
	id, ok := pathID(c, "id", msgSpotNotFound)
	if !ok {
		return
	}

	var req request_models.SpotRequest
	if !bind(c, binding.JSON, &req) {
		return
	}

	spot, err := s.spotService.UpdateSpot(c.Request.Context(), id, req.Patch(), s.linking.For(c.Request))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, spot)
}

// PatchSpot godoc
// @Summary Partially update a spot
// @Tags Spots
// @Accept json
// @Produce json
// @Param id path int true "Spot ID"
// @Param request body request_models.SpotPatchRequest true "Fields to change"
// @Success 200 {object} response_models.Spot
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /spots/{id}/ [patch]
func (s *SpotsController) PatchSpot(c *gin.Context) {
	id, ok := pathID(c, "id", msgSpotNotFound)
	if !ok {
		return
	}

	var req request_models.SpotPatchRequest
	if !bind(c, binding.JSON, &req) {
		return
	}

	spot, err := s.spotService.UpdateSpot(c.Request.Context(), id, req, s.linking.For(c.Request))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, spot)
}

// DeleteSpot godoc
// @Summary Delete a spot and its images
// @Tags Spots
// @Param id path int true "Spot ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /spots/{id}/ [delete]
func (s *SpotsController) DeleteSpot(c *gin.Context) {
	id, ok := pathID(c, "id", msgSpotNotFound)
	if !ok {
		return
	}

	if err := s.spotService.DeleteSpot(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}

// ListSpotImages godoc
// @Summary List the images of a spot
// @Tags Spots
// @Produce json
// @Param id path int true "Spot ID"
// @Success 200 {array} response_models.SpotImage
// @Failure 404 {object} utils.APIResponse
// @Router /spots/{id}/images/ [get]
func (s *SpotsController) ListSpotImages(c *gin.Context) {
	id, ok := pathID(c, "id", msgSpotNotFound)
	if !ok {
		return
	}

	images, err := s.spotService.ListSpotImages(c.Request.Context(), id, s.linking.For(c.Request))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, images)
}

// AddSpotImage godoc
// @Summary Upload an image for a spot
// @Tags Spots
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Spot ID"
// @Param image formData file true "Image file"
// @Param caption formData string false "Caption"
// @Success 201 {object} response_models.SpotImage
// @Failure 400 {object} utils.APIResponse
// @Failure 413 {object} utils.APIResponse
// @Router /spots/{id}/images/ [post]
func (s *SpotsController) AddSpotImage(c *gin.Context) {
	id, ok := pathID(c, "id", msgSpotNotFound)
	if !ok {
		return
	}

	if c.ContentType() != binding.MIMEMultipartPOSTForm {
		utils.RespondValidationError(c, utils.FieldError("image", "The submitted data was not a file. Check the encoding type on the form."))
		return
	}

	var req request_models.SpotImageRequest
	if !bind(c, binding.FormMultipart, &req) {
		return
	}
	if fh, err := c.FormFile("image"); err == nil {
		req.Image = fh
	} else if err != http.ErrMissingFile {
		utils.RespondValidationError(c, utils.FieldError("image", "The submitted data was not a file. Check the encoding type on the form."))
		return
	}

	image, err := s.spotService.AddSpotImage(c.Request.Context(), id, req, s.linking.For(c.Request))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, image)
}

// DeleteSpotImage godoc
// @Summary Delete an image of a spot
// @Tags Spots
// @Param id path int true "Spot ID"
// @Param imageId path int true "Image ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /spots/{id}/images/{imageId}/ [delete]
func (s *SpotsController) DeleteSpotImage(c *gin.Context) {
	spotID, ok := pathID(c, "id", msgSpotNotFound)
	if !ok {
		return
	}
	imageID, ok := pathID(c, "imageId", msgSpotImageNotFound)
	if !ok {
		return
	}

	if err := s.spotService.DeleteSpotImage(c.Request.Context(), spotID, imageID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}
