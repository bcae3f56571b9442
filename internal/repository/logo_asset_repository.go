package repository

import (
	"context"

	"gorm.io/gorm"

	"brandforge/internal/model"
)

// LogoAssetRepository defines logo asset persistence operations.
type LogoAssetRepository interface {
	Create(ctx context.Context, asset *model.LogoAsset) error
	FindByID(ctx context.Context, id uint) (*model.LogoAsset, error)
	ListByBrand(ctx context.Context, brandID uint) ([]model.LogoAsset, error)
	Delete(ctx context.Context, id uint) error
}

type logoAssetRepository struct {
	db *gorm.DB
}

// NewLogoAssetRepository creates a new logo asset repository.
func NewLogoAssetRepository(db *gorm.DB) LogoAssetRepository {
	return &logoAssetRepository{db: db}
}

func (r *logoAssetRepository) Create(ctx context.Context, asset *model.LogoAsset) error {
	return r.db.WithContext(ctx).Create(asset).Error
}

func (r *logoAssetRepository) FindByID(ctx context.Context, id uint) (*model.LogoAsset, error) {
	var asset model.LogoAsset
	if err := r.db.WithContext(ctx).First(&asset, id).Error; err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *logoAssetRepository) ListByBrand(ctx context.Context, brandID uint) ([]model.LogoAsset, error) {
	assets := make([]model.LogoAsset, 0)
	if err := r.db.WithContext(ctx).Where("brand_id = ?", brandID).Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

func (r *logoAssetRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.LogoAsset{}, id).Error
}
