package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"brandforge/internal/cache"
	apperrors "brandforge/internal/errors"
	"brandforge/internal/model"
	"brandforge/internal/repository"
)

const currentBrandCacheTTL = 5 * time.Minute

// BrandInput carries the client-settable brand fields. Nil means "not
// provided"; the owner id is never part of it.
type BrandInput struct {
	Name             *string
	Tagline          *string
	MissionStatement *string
	Keywords         []string
	Tone             *string
	Narrative        *model.Narrative
	Demographics     []string
	Psychographics   []string
}

// BrandService handles brand operations scoped to the authenticated user.
type BrandService interface {
	List(ctx context.Context, userID uint) ([]model.Brand, error)
	Current(ctx context.Context, userID uint) (*model.Brand, error)
	Get(ctx context.Context, id, userID uint) (*model.Brand, error)
	Create(ctx context.Context, userID uint, input BrandInput) (*model.Brand, error)
	Update(ctx context.Context, id, userID uint, input BrandInput) (*model.Brand, error)
	Activate(ctx context.Context, id, userID uint) (*model.Brand, error)
	Delete(ctx context.Context, id, userID uint) error
}

type brandService struct {
	repo  repository.BrandRepository
	cache *cache.Client
}

// NewBrandService creates a new brand service.
func NewBrandService(repo repository.BrandRepository, cache *cache.Client) BrandService {
	return &brandService{repo: repo, cache: cache}
}

func (s *brandService) cacheKey(userID uint) string {
	return fmt.Sprintf("brand:current:%d", userID)
}

func (s *brandService) invalidate(ctx context.Context, userID uint) {
	_ = s.cache.Delete(ctx, s.cacheKey(userID))
}

// currentBrand resolves the user's current brand: the one explicitly
// flagged active, falling back to the most recently updated one.
func currentBrand(ctx context.Context, repo repository.BrandRepository, userID uint) (*model.Brand, error) {
	brand, err := repo.FindActiveByUser(ctx, userID)
	if err == nil {
		return brand, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	brand, err = repo.FindLatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBrandNotFound
		}
		return nil, err
	}
	return brand, nil
}

func (s *brandService) List(ctx context.Context, userID uint) ([]model.Brand, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Current returns the user's current brand, cached per user.
func (s *brandService) Current(ctx context.Context, userID uint) (*model.Brand, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(userID)); data != nil {
		var cached model.Brand
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	brand, err := currentBrand(ctx, s.repo, userID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(brand); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(userID), payload, currentBrandCacheTTL)
	}
	return brand, nil
}

func (s *brandService) Get(ctx context.Context, id, userID uint) (*model.Brand, error) {
	brand, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBrandNotFound
		}
		return nil, err
	}
	return brand, nil
}

// Create inserts a brand owned by userID. The first brand of a user (or the
// first while none is active) becomes the active one.
func (s *brandService) Create(ctx context.Context, userID uint, input BrandInput) (*model.Brand, error) {
	brand := &model.Brand{
		UserID:           userID,
		Tagline:          input.Tagline,
		MissionStatement: input.MissionStatement,
		Keywords:         input.Keywords,
		Tone:             input.Tone,
		Narrative:        input.Narrative,
		Demographics:     input.Demographics,
		Psychographics:   input.Psychographics,
	}
	if input.Name != nil {
		brand.Name = *input.Name
	}

	if _, err := s.repo.FindActiveByUser(ctx, userID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check active brand: %w", err)
		}
		brand.IsActive = true
	}

	if err := s.repo.Create(ctx, brand); err != nil {
		return nil, fmt.Errorf("create brand: %w", err)
	}
	s.invalidate(ctx, userID)
	return brand, nil
}

// Update applies the provided fields to an owned brand. The id and owner
// are taken from the route and the session, never from the payload, and
// UpdatedAt is refreshed on every write.
func (s *brandService) Update(ctx context.Context, id, userID uint, input BrandInput) (*model.Brand, error) {
	brand, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		brand.Name = *input.Name
	}
	if input.Tagline != nil {
		brand.Tagline = input.Tagline
	}
	if input.MissionStatement != nil {
		brand.MissionStatement = input.MissionStatement
	}
	if input.Keywords != nil {
		brand.Keywords = input.Keywords
	}
	if input.Tone != nil {
		brand.Tone = input.Tone
	}
	if input.Narrative != nil {
		brand.Narrative = input.Narrative
	}
	if input.Demographics != nil {
		brand.Demographics = input.Demographics
	}
	if input.Psychographics != nil {
		brand.Psychographics = input.Psychographics
	}

	if err := s.repo.Update(ctx, brand); err != nil {
		return nil, fmt.Errorf("update brand: %w", err)
	}
	s.invalidate(ctx, userID)
	return brand, nil
}

// Activate makes the brand the user's explicit current brand.
func (s *brandService) Activate(ctx context.Context, id, userID uint) (*model.Brand, error) {
	if _, err := s.Get(ctx, id, userID); err != nil {
		return nil, err
	}
	if err := s.repo.SetActive(ctx, id, userID); err != nil {
		return nil, fmt.Errorf("activate brand: %w", err)
	}
	s.invalidate(ctx, userID)
	return s.Get(ctx, id, userID)
}

// Delete removes an owned brand together with its child rows.
func (s *brandService) Delete(ctx context.Context, id, userID uint) error {
	if _, err := s.Get(ctx, id, userID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}
	s.invalidate(ctx, userID)
	return nil
}
