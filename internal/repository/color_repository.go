package repository

import (
	"context"

	"gorm.io/gorm"

	"brandforge/internal/model"
)

// ColorRepository defines color persistence operations.
type ColorRepository interface {
	Create(ctx context.Context, color *model.Color) error
	FindByID(ctx context.Context, id uint) (*model.Color, error)
	ListByBrand(ctx context.Context, brandID uint) ([]model.Color, error)
	Delete(ctx context.Context, id uint) error
	DeleteByBrandAndCategories(ctx context.Context, brandID uint, categories []string) error
}

type colorRepository struct {
	db *gorm.DB
}

// NewColorRepository creates a new color repository.
func NewColorRepository(db *gorm.DB) ColorRepository {
	return &colorRepository{db: db}
}

func (r *colorRepository) Create(ctx context.Context, color *model.Color) error {
	return r.db.WithContext(ctx).Create(color).Error
}

func (r *colorRepository) FindByID(ctx context.Context, id uint) (*model.Color, error) {
	var color model.Color
	if err := r.db.WithContext(ctx).First(&color, id).Error; err != nil {
		return nil, err
	}
	return &color, nil
}

func (r *colorRepository) ListByBrand(ctx context.Context, brandID uint) ([]model.Color, error) {
	colors := make([]model.Color, 0)
	if err := r.db.WithContext(ctx).Where("brand_id = ?", brandID).Find(&colors).Error; err != nil {
		return nil, err
	}
	return colors, nil
}

func (r *colorRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Color{}, id).Error
}

// DeleteByBrandAndCategories clears palette rows before a regenerated
// palette is written.
func (r *colorRepository) DeleteByBrandAndCategories(ctx context.Context, brandID uint, categories []string) error {
	return r.db.WithContext(ctx).
		Where("brand_id = ? AND category IN ?", brandID, categories).
		Delete(&model.Color{}).Error
}
