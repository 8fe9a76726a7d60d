package response_models

import (
	"encoding/json"

	"tourmap/internal/models/db_models"
)

type Route struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Coordinates json.RawMessage `json:"coordinates"`
}

func (r *Route) With(m *db_models.Route) {
	r.ID = m.ID
	r.Name = m.Name
	r.Coordinates = json.RawMessage(m.Coordinates)
}
