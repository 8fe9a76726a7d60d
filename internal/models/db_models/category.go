package db_models

// Category is a named label for spots with an optional icon file.
// Icon holds the file name relative to the media root.
type Category struct {
	BaseModel
	Name string `gorm:"size:255;uniqueIndex;not null"`
	Icon string `gorm:"size:255"`
}
