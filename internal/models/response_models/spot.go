package response_models

import (
	"github.com/samber/lo"

	"tourmap/internal/models/db_models"
	"tourmap/pkg/media"
)

type SpotImage struct {
	ID       uint    `json:"id"`
	ImageURL *string `json:"image_url"`
	Caption  *string `json:"caption"`
}

func (r *SpotImage) With(m *db_models.SpotImage, links media.Linker) {
	r.ID = m.ID
	r.ImageURL = links.URL(m.Image)
	r.Caption = m.Caption
}

type Spot struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Lat         float64     `json:"lat"`
	Lng         float64     `json:"lng"`
	Description string      `json:"description"`
	Category    *Category   `json:"category"`
	Images      []SpotImage `json:"images"`
}

// With maps the spot along with its preloaded category and images.
func (r *Spot) With(m *db_models.Spot, links media.Linker) {
	r.ID = m.ID
	r.Name = m.Name
	r.Lat = m.Lat
	r.Lng = m.Lng
	r.Description = m.Description

	r.Category = nil
	if m.Category != nil {
		r.Category = &Category{}
		r.Category.With(m.Category, links)
	}

	r.Images = lo.Map(m.Images, func(img db_models.SpotImage, _ int) SpotImage {
		var out SpotImage
		out.With(&img, links)
		return out
	})
}
