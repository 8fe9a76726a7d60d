package response_models

import (
	"tourmap/internal/models/db_models"
	"tourmap/pkg/media"
)

type Category struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	IconURL *string `json:"icon_url"`
}

func (r *Category) With(m *db_models.Category, links media.Linker) {
	r.ID = m.ID
	r.Name = m.Name
	r.IconURL = links.URL(m.Icon)
}
