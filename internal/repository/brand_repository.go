package repository

import (
	"context"

	"gorm.io/gorm"

	"brandforge/internal/model"
)

// BrandRepository defines brand persistence operations. Every read and
// write is scoped to the owning user.
type BrandRepository interface {
	Create(ctx context.Context, brand *model.Brand) error
	Update(ctx context.Context, brand *model.Brand) error
	FindByID(ctx context.Context, id, userID uint) (*model.Brand, error)
	FindActiveByUser(ctx context.Context, userID uint) (*model.Brand, error)
	FindLatestByUser(ctx context.Context, userID uint) (*model.Brand, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Brand, error)
	SetActive(ctx context.Context, id, userID uint) error
	Delete(ctx context.Context, id uint) error
}

type brandRepository struct {
	db *gorm.DB
}

// NewBrandRepository creates a new brand repository.
func NewBrandRepository(db *gorm.DB) BrandRepository {
	return &brandRepository{db: db}
}

func (r *brandRepository) Create(ctx context.Context, brand *model.Brand) error {
	return r.db.WithContext(ctx).Create(brand).Error
}

func (r *brandRepository) Update(ctx context.Context, brand *model.Brand) error {
	return r.db.WithContext(ctx).Save(brand).Error
}

// FindByID looks a brand up by the (id, userID) pair. The double predicate
// is the ownership check; a miss is indistinguishable from absence.
func (r *brandRepository) FindByID(ctx context.Context, id, userID uint) (*model.Brand, error) {
	var brand model.Brand
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&brand).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) FindActiveByUser(ctx context.Context, userID uint) (*model.Brand, error) {
	var brand model.Brand
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&brand).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) FindLatestByUser(ctx context.Context, userID uint) (*model.Brand, error) {
	var brand model.Brand
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		First(&brand).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) ListByUser(ctx context.Context, userID uint) ([]model.Brand, error) {
	brands := make([]model.Brand, 0)
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

// SetActive marks one brand active and clears the flag on its siblings.
func (r *brandRepository) SetActive(ctx context.Context, id, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Brand{}).
			Where("user_id = ? AND id <> ?", userID, id).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&model.Brand{}).
			Where("id = ? AND user_id = ?", id, userID).
			Update("is_active", true).Error
	})
}

// Delete removes a brand; child rows go with it via the FK constraints.
func (r *brandRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Brand{}, id).Error
}
