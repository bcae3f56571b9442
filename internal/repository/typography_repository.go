package repository

import (
	"context"

	"gorm.io/gorm"

	"brandforge/internal/model"
)

// TypographyRepository defines typography persistence operations.
type TypographyRepository interface {
	Create(ctx context.Context, typography *model.Typography) error
	FindByID(ctx context.Context, id uint) (*model.Typography, error)
	ListByBrand(ctx context.Context, brandID uint) ([]model.Typography, error)
	Delete(ctx context.Context, id uint) error
	DeleteByBrand(ctx context.Context, brandID uint) error
}

type typographyRepository struct {
	db *gorm.DB
}

// NewTypographyRepository creates a new typography repository.
func NewTypographyRepository(db *gorm.DB) TypographyRepository {
	return &typographyRepository{db: db}
}

func (r *typographyRepository) Create(ctx context.Context, typography *model.Typography) error {
	return r.db.WithContext(ctx).Create(typography).Error
}

func (r *typographyRepository) FindByID(ctx context.Context, id uint) (*model.Typography, error) {
	var typography model.Typography
	if err := r.db.WithContext(ctx).First(&typography, id).Error; err != nil {
		return nil, err
	}
	return &typography, nil
}

func (r *typographyRepository) ListByBrand(ctx context.Context, brandID uint) ([]model.Typography, error) {
	rows := make([]model.Typography, 0)
	if err := r.db.WithContext(ctx).Where("brand_id = ?", brandID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *typographyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Typography{}, id).Error
}

// DeleteByBrand clears rows before a regenerated recommendation is written.
func (r *typographyRepository) DeleteByBrand(ctx context.Context, brandID uint) error {
	return r.db.WithContext(ctx).Where("brand_id = ?", brandID).Delete(&model.Typography{}).Error
}
