package model

// LogoAsset is a stored logo file reference belonging to a brand.
type LogoAsset struct {
	ID      uint    `json:"id" gorm:"primaryKey"`
	BrandID uint    `json:"brandId" gorm:"not null;index"`
	URL     string  `json:"url" gorm:"size:1024;not null"`
	Type    *string `json:"type" gorm:"size:50"`   // primary, secondary, monochrome
	Format  *string `json:"format" gorm:"size:20"` // svg, png
}
