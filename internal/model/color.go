package model

// Color is a single palette entry of a brand. The hex value is stored
// verbatim, no normalization or casing changes.
type Color struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	BrandID  uint    `json:"brandId" gorm:"not null;index"`
	Name     string  `json:"name" gorm:"size:255;not null"`
	HexValue string  `json:"hexValue" gorm:"size:32;not null"`
	RGBValue *string `json:"rgbValue" gorm:"size:64"`
	Category *string `json:"category" gorm:"size:50"` // primary, secondary, accent
}

// Color categories used by the palette generator.
const (
	ColorCategoryPrimary   = "primary"
	ColorCategorySecondary = "secondary"
	ColorCategoryAccent    = "accent"
)
