package model

import "time"

// User represents a registered user in the system.
type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Email        string     `json:"email" gorm:"size:255;not null"`
	FullName     *string    `json:"fullName,omitempty" gorm:"size:255"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`

	// Relations
	Brands []Brand `json:"brands,omitempty" gorm:"foreignKey:UserID"`
}
