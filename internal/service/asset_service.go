package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "brandforge/internal/errors"
	"brandforge/internal/model"
	"brandforge/internal/repository"
)

// ColorInput carries the client-settable color fields.
type ColorInput struct {
	BrandID  *uint
	Name     string
	HexValue string
	RGBValue *string
	Category *string
}

// TypographyInput carries the client-settable typography fields.
type TypographyInput struct {
	BrandID    *uint
	FontFamily string
	Category   *string
	Weights    []string
	Styles     []string
}

// LogoAssetInput carries the client-settable logo asset fields.
type LogoAssetInput struct {
	BrandID *uint
	URL     string
	Type    *string
	Format  *string
}

// AssetService handles the child entities of a brand: colors, typography
// and logo assets. Every operation is scoped to brands owned by the caller;
// lists address the current brand and return empty when the user has none.
type AssetService interface {
	ListColors(ctx context.Context, userID uint) ([]model.Color, error)
	CreateColor(ctx context.Context, userID uint, input ColorInput) (*model.Color, error)
	DeleteColor(ctx context.Context, userID, id uint) error

	ListTypography(ctx context.Context, userID uint) ([]model.Typography, error)
	CreateTypography(ctx context.Context, userID uint, input TypographyInput) (*model.Typography, error)
	DeleteTypography(ctx context.Context, userID, id uint) error

	ListLogoAssets(ctx context.Context, userID uint) ([]model.LogoAsset, error)
	CreateLogoAsset(ctx context.Context, userID uint, input LogoAssetInput) (*model.LogoAsset, error)
	DeleteLogoAsset(ctx context.Context, userID, id uint) error
}

type assetService struct {
	brandRepo      repository.BrandRepository
	colorRepo      repository.ColorRepository
	typographyRepo repository.TypographyRepository
	logoAssetRepo  repository.LogoAssetRepository
}

// NewAssetService creates a new asset service.
func NewAssetService(
	brandRepo repository.BrandRepository,
	colorRepo repository.ColorRepository,
	typographyRepo repository.TypographyRepository,
	logoAssetRepo repository.LogoAssetRepository,
) AssetService {
	return &assetService{
		brandRepo:      brandRepo,
		colorRepo:      colorRepo,
		typographyRepo: typographyRepo,
		logoAssetRepo:  logoAssetRepo,
	}
}

// resolveBrand picks the target brand for an asset operation: the explicit
// owned brand when an id is supplied, the current brand otherwise.
func (s *assetService) resolveBrand(ctx context.Context, userID uint, brandID *uint) (*model.Brand, error) {
	if brandID != nil {
		brand, err := s.brandRepo.FindByID(ctx, *brandID, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrBrandNotFound
			}
			return nil, err
		}
		return brand, nil
	}
	return currentBrand(ctx, s.brandRepo, userID)
}

func (s *assetService) ListColors(ctx context.Context, userID uint) ([]model.Color, error) {
	brand, err := currentBrand(ctx, s.brandRepo, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrBrandNotFound) {
			return []model.Color{}, nil
		}
		return nil, err
	}
	return s.colorRepo.ListByBrand(ctx, brand.ID)
}

func (s *assetService) CreateColor(ctx context.Context, userID uint, input ColorInput) (*model.Color, error) {
	brand, err := s.resolveBrand(ctx, userID, input.BrandID)
	if err != nil {
		return nil, err
	}
	color := &model.Color{
		BrandID:  brand.ID,
		Name:     input.Name,
		HexValue: input.HexValue,
		RGBValue: input.RGBValue,
		Category: input.Category,
	}
	if err := s.colorRepo.Create(ctx, color); err != nil {
		return nil, fmt.Errorf("create color: %w", err)
	}
	return color, nil
}

func (s *assetService) DeleteColor(ctx context.Context, userID, id uint) error {
	color, err := s.colorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrColorNotFound
		}
		return err
	}
	// Ownership runs through the parent brand; a foreign color is reported
	// as absent.
	if _, err := s.brandRepo.FindByID(ctx, color.BrandID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrColorNotFound
		}
		return err
	}
	return s.colorRepo.Delete(ctx, id)
}

func (s *assetService) ListTypography(ctx context.Context, userID uint) ([]model.Typography, error) {
	brand, err := currentBrand(ctx, s.brandRepo, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrBrandNotFound) {
			return []model.Typography{}, nil
		}
		return nil, err
	}
	return s.typographyRepo.ListByBrand(ctx, brand.ID)
}

func (s *assetService) CreateTypography(ctx context.Context, userID uint, input TypographyInput) (*model.Typography, error) {
	brand, err := s.resolveBrand(ctx, userID, input.BrandID)
	if err != nil {
		return nil, err
	}
	typography := &model.Typography{
		BrandID:    brand.ID,
		FontFamily: input.FontFamily,
		Category:   input.Category,
		Weights:    input.Weights,
		Styles:     input.Styles,
	}
	if err := s.typographyRepo.Create(ctx, typography); err != nil {
		return nil, fmt.Errorf("create typography: %w", err)
	}
	return typography, nil
}

func (s *assetService) DeleteTypography(ctx context.Context, userID, id uint) error {
	typography, err := s.typographyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTypographyNotFound
		}
		return err
	}
	if _, err := s.brandRepo.FindByID(ctx, typography.BrandID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTypographyNotFound
		}
		return err
	}
	return s.typographyRepo.Delete(ctx, id)
}

func (s *assetService) ListLogoAssets(ctx context.Context, userID uint) ([]model.LogoAsset, error) {
	brand, err := currentBrand(ctx, s.brandRepo, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrBrandNotFound) {
			return []model.LogoAsset{}, nil
		}
		return nil, err
	}
	return s.logoAssetRepo.ListByBrand(ctx, brand.ID)
}

func (s *assetService) CreateLogoAsset(ctx context.Context, userID uint, input LogoAssetInput) (*model.LogoAsset, error) {
	brand, err := s.resolveBrand(ctx, userID, input.BrandID)
	if err != nil {
		return nil, err
	}
	asset := &model.LogoAsset{
		BrandID: brand.ID,
		URL:     input.URL,
		Type:    input.Type,
		Format:  input.Format,
	}
	if err := s.logoAssetRepo.Create(ctx, asset); err != nil {
		return nil, fmt.Errorf("create logo asset: %w", err)
	}
	return asset, nil
}

func (s *assetService) DeleteLogoAsset(ctx context.Context, userID, id uint) error {
	asset, err := s.logoAssetRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLogoAssetNotFound
		}
		return err
	}
	if _, err := s.brandRepo.FindByID(ctx, asset.BrandID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLogoAssetNotFound
		}
		return err
	}
	return s.logoAssetRepo.Delete(ctx, id)
}
