package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"tourmap/internal/models/db_models"
	"tourmap/internal/models/request_models"
	"tourmap/internal/models/response_models"
	"tourmap/internal/repositories"
	"tourmap/pkg/logging"
	"tourmap/pkg/media"
	"tourmap/pkg/utils"
)

type SpotServiceInterface interface {
	ListSpots(ctx context.Context, links media.Linker) ([]response_models.Spot, error)
	GetSpot(ctx context.Context, id uint, links media.Linker) (response_models.Spot, error)
	CreateSpot(ctx context.Context, req request_models.SpotRequest, links media.Linker) (response_models.Spot, error)
	UpdateSpot(ctx context.Context, id uint, req request_models.SpotPatchRequest, links media.Linker) (response_models.Spot, error)
	DeleteSpot(ctx context.Context, id uint) error

	ListSpotImages(ctx context.Context, spotID uint, links media.Linker) ([]response_models.SpotImage, error)
	AddSpotImage(ctx context.Context, spotID uint, req request_models.SpotImageRequest, links media.Linker) (response_models.SpotImage, error)
	DeleteSpotImage(ctx context.Context, spotID, imageID uint) error
}

type SpotService struct {
	spotRepo     repositories.SpotRepository
	imageRepo    repositories.SpotImageRepository
	categoryRepo repositories.CategoryRepository
	uploader     *Uploader
}

func NewSpotService(
	spotRepo repositories.SpotRepository,
	imageRepo repositories.SpotImageRepository,
	categoryRepo repositories.CategoryRepository,
	uploader *Uploader,
) SpotServiceInterface {
	return &SpotService{
		spotRepo:     spotRepo,
		imageRepo:    imageRepo,
		categoryRepo: categoryRepo,
		uploader:     uploader,
	}
}

func (s *SpotService) ListSpots(ctx context.Context, links media.Linker) ([]response_models.Spot, error) {
	spots, err := s.spotRepo.List(ctx)
	if err != nil {
		return nil, databaseError(ctx, err)
	}

	return lo.Map(spots, func(spot db_models.Spot, _ int) response_models.Spot {
		var r response_models.Spot
		r.With(&spot, links)
		return r
	}), nil
}

func (s *SpotService) GetSpot(ctx context.Context, id uint, links media.Linker) (response_models.Spot, error) {
	spot, err := s.find(ctx, id)
	if err != nil {
		return response_models.Spot{}, err
	}

	var r response_models.Spot
	r.With(spot, links)
	return r, nil
}

func (s *SpotService) CreateSpot(ctx context.Context, req request_models.SpotRequest, links media.Linker) (response_models.Spot, error) {
	spot := &db_models.Spot{}
	if err := s.apply(ctx, spot, req.Patch()); err != nil {
		return response_models.Spot{}, err
	}

	if err := s.spotRepo.Create(ctx, spot); err != nil {
		return response_models.Spot{}, databaseError(ctx, err)
	}

	return s.GetSpot(ctx, spot.ID, links)
}

func (s *SpotService) UpdateSpot(ctx context.Context, id uint, req request_models.SpotPatchRequest, links media.Linker) (response_models.Spot, error) {
	spot, err := s.find(ctx, id)
	if err != nil {
		return response_models.Spot{}, err
	}

	if err := s.apply(ctx, spot, req); err != nil {
		return response_models.Spot{}, err
	}

	if err := s.spotRepo.Update(ctx, spot); err != nil {
		return response_models.Spot{}, databaseError(ctx, err)
	}

	return s.GetSpot(ctx, spot.ID, links)
}

func (s *SpotService) DeleteSpot(ctx context.Context, id uint) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}

	if err := s.spotRepo.Delete(ctx, id); err != nil {
		return databaseError(ctx, err)
	}

	logger := logging.GetFromContext(ctx)
	logger.Info().Uint("spot_id", id).Msg("spot deleted")
	return nil
}

func (s *SpotService) ListSpotImages(ctx context.Context, spotID uint, links media.Linker) ([]response_models.SpotImage, error) {
	if _, err := s.find(ctx, spotID); err != nil {
		return nil, err
	}

	images, err := s.imageRepo.ListBySpot(ctx, spotID)
	if err != nil {
		return nil, databaseError(ctx, err)
	}

	return lo.Map(images, func(img db_models.SpotImage, _ int) response_models.SpotImage {
		var r response_models.SpotImage
		r.With(&img, links)
		return r
	}), nil
}

func (s *SpotService) AddSpotImage(ctx context.Context, spotID uint, req request_models.SpotImageRequest, links media.Linker) (response_models.SpotImage, error) {
	if _, err := s.find(ctx, spotID); err != nil {
		return response_models.SpotImage{}, err
	}

	if req.Image == nil {
		return response_models.SpotImage{}, utils.FieldError("image", "No file was submitted.")
	}

	name, err := s.uploader.SaveImage(ctx, "image", media.SpotImagesDir, req.Image)
	if err != nil {
		return response_models.SpotImage{}, err
	}

	image := &db_models.SpotImage{SpotID: spotID, Image: name}
	if req.Caption != nil {
		if caption := strings.TrimSpace(*req.Caption); caption != "" {
			image.Caption = &caption
		}
	}

	if err := s.imageRepo.Create(ctx, image); err != nil {
		return response_models.SpotImage{}, databaseError(ctx, err)
	}

	var r response_models.SpotImage
	r.With(image, links)
	return r, nil
}

func (s *SpotService) DeleteSpotImage(ctx context.Context, spotID, imageID uint) error {
	image, err := s.imageRepo.GetByID(ctx, spotID, imageID)
	if err != nil {
		return databaseError(ctx, err)
	}
	if image == nil {
		return utils.ErrSpotImageNotFound
	}

	if err := s.imageRepo.Delete(ctx, spotID, imageID); err != nil {
		return databaseError(ctx, err)
	}
	return nil
}

func (s *SpotService) find(ctx context.Context, id uint) (*db_models.Spot, error) {
	spot, err := s.spotRepo.GetByID(ctx, id)
	if err != nil {
		return nil, databaseError(ctx, err)
	}
	if spot == nil {
		return nil, utils.ErrSpotNotFound
	}
	return spot, nil
}

// apply copies the provided fields onto spot, resolving category_id.
func (s *SpotService) apply(ctx context.Context, spot *db_models.Spot, req request_models.SpotPatchRequest) error {
	if req.Name != nil {
		spot.Name = strings.TrimSpace(*req.Name)
	}
	if req.Lat != nil {
		spot.Lat = *req.Lat
	}
	if req.Lng != nil {
		spot.Lng = *req.Lng
	}
	if req.Description != nil {
		spot.Description = strings.TrimSpace(*req.Description)
	}

	if req.CategoryID.Set {
		if req.CategoryID.Value == nil {
			spot.CategoryID = nil
		} else {
			id := *req.CategoryID.Value
			category, err := s.categoryRepo.GetByID(ctx, id)
			if err != nil {
				return databaseError(ctx, err)
			}
			if category == nil {
				return utils.FieldError("category_id", fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id))
			}
			spot.CategoryID = &category.ID
		}
	}

	// associations are reloaded after the write
	spot.Category = nil
	spot.Images = nil

	return nil
}
