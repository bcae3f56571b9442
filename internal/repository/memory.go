package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	"brandforge/internal/model"
)

// MemoryStore is the map-backed storage variant for development and tests.
// Single process only; the mutex covers all entity maps so a brand delete
// can cascade into its children atomically. Misses are reported with
// gorm.ErrRecordNotFound so services treat both backends alike.
type MemoryStore struct {
	mu sync.RWMutex

	users      map[uint]model.User
	brands     map[uint]model.Brand
	colors     map[uint]model.Color
	typography map[uint]model.Typography
	logoAssets map[uint]model.LogoAsset

	nextUserID       uint
	nextBrandID      uint
	nextColorID      uint
	nextTypographyID uint
	nextLogoAssetID  uint
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:            make(map[uint]model.User),
		brands:           make(map[uint]model.Brand),
		colors:           make(map[uint]model.Color),
		typography:       make(map[uint]model.Typography),
		logoAssets:       make(map[uint]model.LogoAsset),
		nextUserID:       1,
		nextBrandID:      1,
		nextColorID:      1,
		nextTypographyID: 1,
		nextLogoAssetID:  1,
	}
}

// Users returns the user repository view of the store.
func (s *MemoryStore) Users() UserRepository { return &memoryUserRepository{s} }

// Brands returns the brand repository view of the store.
func (s *MemoryStore) Brands() BrandRepository { return &memoryBrandRepository{s} }

// Colors returns the color repository view of the store.
func (s *MemoryStore) Colors() ColorRepository { return &memoryColorRepository{s} }

// Typography returns the typography repository view of the store.
func (s *MemoryStore) Typography() TypographyRepository { return &memoryTypographyRepository{s} }

// LogoAssets returns the logo asset repository view of the store.
func (s *MemoryStore) LogoAssets() LogoAssetRepository { return &memoryLogoAssetRepository{s} }

type memoryUserRepository struct{ store *MemoryStore }

func (r *memoryUserRepository) Create(_ context.Context, user *model.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = s.nextUserID
	s.nextUserID++
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) FindByID(_ context.Context, id uint) (*model.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *memoryUserRepository) FindByUsername(_ context.Context, username string) (*model.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryUserRepository) UpdateLastLogin(_ context.Context, id uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	now := time.Now()
	user.LastLoginAt = &now
	s.users[id] = user
	return nil
}

type memoryBrandRepository struct{ store *MemoryStore }

func (r *memoryBrandRepository) Create(_ context.Context, brand *model.Brand) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	brand.ID = s.nextBrandID
	s.nextBrandID++
	now := time.Now()
	brand.CreatedAt = now
	brand.UpdatedAt = now
	s.brands[brand.ID] = *brand
	return nil
}

func (r *memoryBrandRepository) Update(_ context.Context, brand *model.Brand) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.brands[brand.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	brand.UpdatedAt = time.Now()
	s.brands[brand.ID] = *brand
	return nil
}

func (r *memoryBrandRepository) FindByID(_ context.Context, id, userID uint) (*model.Brand, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	brand, ok := s.brands[id]
	if !ok || brand.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	b := brand
	return &b, nil
}

func (r *memoryBrandRepository) FindActiveByUser(_ context.Context, userID uint) (*model.Brand, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, brand := range s.brands {
		if brand.UserID == userID && brand.IsActive {
			b := brand
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryBrandRepository) FindLatestByUser(_ context.Context, userID uint) (*model.Brand, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	var latest *model.Brand
	for _, brand := range s.brands {
		if brand.UserID != userID {
			continue
		}
		b := brand
		if latest == nil || b.UpdatedAt.After(latest.UpdatedAt) {
			latest = &b
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return latest, nil
}

func (r *memoryBrandRepository) ListByUser(_ context.Context, userID uint) ([]model.Brand, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	brands := make([]model.Brand, 0)
	for _, brand := range s.brands {
		if brand.UserID == userID {
			brands = append(brands, brand)
		}
	}
	sort.Slice(brands, func(i, j int) bool { return brands[i].ID < brands[j].ID })
	return brands, nil
}

func (r *memoryBrandRepository) SetActive(_ context.Context, id, userID uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	target, ok := s.brands[id]
	if !ok || target.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	for bid, brand := range s.brands {
		if brand.UserID != userID {
			continue
		}
		brand.IsActive = bid == id
		s.brands[bid] = brand
	}
	return nil
}

func (r *memoryBrandRepository) Delete(_ context.Context, id uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.brands, id)
	for cid, color := range s.colors {
		if color.BrandID == id {
			delete(s.colors, cid)
		}
	}
	for tid, row := range s.typography {
		if row.BrandID == id {
			delete(s.typography, tid)
		}
	}
	for aid, asset := range s.logoAssets {
		if asset.BrandID == id {
			delete(s.logoAssets, aid)
		}
	}
	return nil
}

type memoryColorRepository struct{ store *MemoryStore }

func (r *memoryColorRepository) Create(_ context.Context, color *model.Color) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	color.ID = s.nextColorID
	s.nextColorID++
	s.colors[color.ID] = *color
	return nil
}

func (r *memoryColorRepository) FindByID(_ context.Context, id uint) (*model.Color, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	color, ok := s.colors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	c := color
	return &c, nil
}

func (r *memoryColorRepository) ListByBrand(_ context.Context, brandID uint) ([]model.Color, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	colors := make([]model.Color, 0)
	for _, color := range s.colors {
		if color.BrandID == brandID {
			colors = append(colors, color)
		}
	}
	sort.Slice(colors, func(i, j int) bool { return colors[i].ID < colors[j].ID })
	return colors, nil
}

func (r *memoryColorRepository) Delete(_ context.Context, id uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.colors, id)
	return nil
}

func (r *memoryColorRepository) DeleteByBrandAndCategories(_ context.Context, brandID uint, categories []string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	match := make(map[string]bool, len(categories))
	for _, category := range categories {
		match[category] = true
	}
	for cid, color := range s.colors {
		if color.BrandID == brandID && color.Category != nil && match[*color.Category] {
			delete(s.colors, cid)
		}
	}
	return nil
}

type memoryTypographyRepository struct{ store *MemoryStore }

func (r *memoryTypographyRepository) Create(_ context.Context, typography *model.Typography) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	typography.ID = s.nextTypographyID
	s.nextTypographyID++
	s.typography[typography.ID] = *typography
	return nil
}

func (r *memoryTypographyRepository) FindByID(_ context.Context, id uint) (*model.Typography, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.typography[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	t := row
	return &t, nil
}

func (r *memoryTypographyRepository) ListByBrand(_ context.Context, brandID uint) ([]model.Typography, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := make([]model.Typography, 0)
	for _, row := range s.typography {
		if row.BrandID == brandID {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows, nil
}

func (r *memoryTypographyRepository) Delete(_ context.Context, id uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.typography, id)
	return nil
}

func (r *memoryTypographyRepository) DeleteByBrand(_ context.Context, brandID uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for tid, row := range s.typography {
		if row.BrandID == brandID {
			delete(s.typography, tid)
		}
	}
	return nil
}

type memoryLogoAssetRepository struct{ store *MemoryStore }

func (r *memoryLogoAssetRepository) Create(_ context.Context, asset *model.LogoAsset) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	asset.ID = s.nextLogoAssetID
	s.nextLogoAssetID++
	s.logoAssets[asset.ID] = *asset
	return nil
}

func (r *memoryLogoAssetRepository) FindByID(_ context.Context, id uint) (*model.LogoAsset, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	asset, ok := s.logoAssets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	a := asset
	return &a, nil
}

func (r *memoryLogoAssetRepository) ListByBrand(_ context.Context, brandID uint) ([]model.LogoAsset, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	assets := make([]model.LogoAsset, 0)
	for _, asset := range s.logoAssets {
		if asset.BrandID == brandID {
			assets = append(assets, asset)
		}
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i].ID < assets[j].ID })
	return assets, nil
}

func (r *memoryLogoAssetRepository) Delete(_ context.Context, id uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.logoAssets, id)
	return nil
}
