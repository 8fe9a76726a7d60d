package db_models

type Spot struct {
	BaseModel
	Name        string  `gorm:"size:255;not null"`
	Lat         float64 `gorm:"not null"`
	Lng         float64 `gorm:"not null"`
	Description string  `gorm:"type:text;not null"`

	CategoryID *uint       `gorm:"index"`
	Category   *Category   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Images     []SpotImage `gorm:"foreignKey:SpotID;constraint:OnDelete:CASCADE;"`
}
