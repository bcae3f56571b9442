package model

// Typography is a font recommendation attached to a brand.
type Typography struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	BrandID    uint       `json:"brandId" gorm:"not null;index"`
	FontFamily string     `json:"fontFamily" gorm:"size:255;not null"`
	Category   *string    `json:"category" gorm:"size:50"` // headings, body, accent
	Weights    StringList `json:"weights" gorm:"type:json"`
	Styles     StringList `json:"styles" gorm:"type:json"`
}

// Typography categories used by the recommendation generator.
const (
	TypographyCategoryHeadings = "headings"
	TypographyCategoryBody     = "body"
	TypographyCategoryAccent   = "accent"
)
