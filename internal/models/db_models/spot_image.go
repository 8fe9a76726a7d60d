package db_models

type SpotImage struct {
	BaseModel
	SpotID  uint    `gorm:"not null;index"`
	Image   string  `gorm:"size:255;not null"`
	Caption *string `gorm:"size:255"`
}
