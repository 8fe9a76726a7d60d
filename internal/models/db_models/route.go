package db_models

import "gorm.io/datatypes"

// Route is a named polyline. Coordinates is stored as-is; it is expected to
// hold [lat, lng] pairs but nothing enforces that.
type Route struct {
	BaseModel
	Name        string         `gorm:"size:255;not null"`
	Coordinates datatypes.JSON `gorm:"not null"`
}
