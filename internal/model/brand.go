package model

import "time"

// Brand is the central aggregate: one style guide project owned by a user.
type Brand struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	UserID           uint       `json:"userId" gorm:"not null;index"`
	Name             string     `json:"name" gorm:"size:255;not null"`
	Tagline          *string    `json:"tagline" gorm:"size:255"`
	MissionStatement *string    `json:"missionStatement" gorm:"type:text"`
	Keywords         StringList `json:"keywords" gorm:"type:json"`
	Tone             *string    `json:"tone" gorm:"size:100"`
	Narrative        *Narrative `json:"narrative" gorm:"type:json"`
	Demographics     StringList `json:"demographics" gorm:"type:json"`
	Psychographics   StringList `json:"psychographics" gorm:"type:json"`
	IsActive         bool       `json:"isActive" gorm:"default:false;index"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`

	// Relations; children are removed together with their brand.
	Colors     []Color      `json:"colors,omitempty" gorm:"foreignKey:BrandID;constraint:OnDelete:CASCADE"`
	Typography []Typography `json:"typography,omitempty" gorm:"foreignKey:BrandID;constraint:OnDelete:CASCADE"`
	LogoAssets []LogoAsset  `json:"logoAssets,omitempty" gorm:"foreignKey:BrandID;constraint:OnDelete:CASCADE"`
}
