package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "brandforge/internal/errors"
	"brandforge/internal/model"
	"brandforge/internal/repository"
)

func newAssetServiceForTest() (AssetService, *repository.MemoryStore) {
	store := repository.NewMemoryStore()
	service := NewAssetService(store.Brands(), store.Colors(), store.Typography(), store.LogoAssets())
	return service, store
}

func seedBrand(t *testing.T, store *repository.MemoryStore, userID uint, active bool) *model.Brand {
	t.Helper()
	brand := &model.Brand{UserID: userID, Name: "Test Brand", IsActive: active}
	assert.NoError(t, store.Brands().Create(context.Background(), brand))
	return brand
}

func TestAssetService_CreateColor(t *testing.T) {
	service, store := newAssetServiceForTest()
	ctx := context.Background()
	brand := seedBrand(t, store, 1, true)

	t.Run("hex stored verbatim", func(t *testing.T) {
		category := model.ColorCategoryPrimary
		color, err := service.CreateColor(ctx, 1, ColorInput{
			Name:     "Forge Orange",
			HexValue: "#E85000",
			Category: &category,
		})
		assert.NoError(t, err)
		assert.Equal(t, brand.ID, color.BrandID)
		assert.Equal(t, "#E85000", color.HexValue)

		lower, err := service.CreateColor(ctx, 1, ColorInput{
			Name:     "lowercase",
			HexValue: "#e85000",
		})
		assert.NoError(t, err)
		assert.Equal(t, "#e85000", lower.HexValue, "no case normalization")
	})

	t.Run("defaults to current brand", func(t *testing.T) {
		color, err := service.CreateColor(ctx, 1, ColorInput{Name: "Implicit", HexValue: "#000000"})
		assert.NoError(t, err)
		assert.Equal(t, brand.ID, color.BrandID)
	})

	t.Run("explicit foreign brand rejected", func(t *testing.T) {
		foreign := seedBrand(t, store, 2, true)
		_, err := service.CreateColor(ctx, 1, ColorInput{
			BrandID:  &foreign.ID,
			Name:     "Sneaky",
			HexValue: "#FFFFFF",
		})
		assert.ErrorIs(t, err, apperrors.ErrBrandNotFound)
	})

	t.Run("no brand at all", func(t *testing.T) {
		_, err := service.CreateColor(ctx, 99, ColorInput{Name: "Orphan", HexValue: "#123456"})
		assert.ErrorIs(t, err, apperrors.ErrBrandNotFound)
	})
}

func TestAssetService_ListColors(t *testing.T) {
	service, store := newAssetServiceForTest()
	ctx := context.Background()

	t.Run("empty without a brand", func(t *testing.T) {
		colors, err := service.ListColors(ctx, 1)
		assert.NoError(t, err)
		assert.NotNil(t, colors)
		assert.Empty(t, colors)
	})

	brand := seedBrand(t, store, 1, true)
	foreign := seedBrand(t, store, 2, true)
	assert.NoError(t, store.Colors().Create(ctx, &model.Color{BrandID: brand.ID, Name: "Mine", HexValue: "#111111"}))
	assert.NoError(t, store.Colors().Create(ctx, &model.Color{BrandID: foreign.ID, Name: "Theirs", HexValue: "#222222"}))

	colors, err := service.ListColors(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, colors, 1)
	assert.Equal(t, "Mine", colors[0].Name)
}

func TestAssetService_DeleteColor(t *testing.T) {
	service, store := newAssetServiceForTest()
	ctx := context.Background()
	brand := seedBrand(t, store, 1, true)
	foreign := seedBrand(t, store, 2, true)

	mine := &model.Color{BrandID: brand.ID, Name: "Mine", HexValue: "#111111"}
	assert.NoError(t, store.Colors().Create(ctx, mine))
	theirs := &model.Color{BrandID: foreign.ID, Name: "Theirs", HexValue: "#222222"}
	assert.NoError(t, store.Colors().Create(ctx, theirs))

	// A foreign color reads as absent.
	assert.ErrorIs(t, service.DeleteColor(ctx, 1, theirs.ID), apperrors.ErrColorNotFound)
	assert.ErrorIs(t, service.DeleteColor(ctx, 1, 999), apperrors.ErrColorNotFound)

	assert.NoError(t, service.DeleteColor(ctx, 1, mine.ID))
	colors, err := service.ListColors(ctx, 1)
	assert.NoError(t, err)
	assert.Empty(t, colors)
}

func TestAssetService_Typography(t *testing.T) {
	service, store := newAssetServiceForTest()
	ctx := context.Background()
	brand := seedBrand(t, store, 1, true)

	category := model.TypographyCategoryHeadings
	row, err := service.CreateTypography(ctx, 1, TypographyInput{
		FontFamily: "Space Grotesk",
		Category:   &category,
		Weights:    []string{"500", "700"},
	})
	assert.NoError(t, err)
	assert.Equal(t, brand.ID, row.BrandID)

	rows, err := service.ListTypography(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Space Grotesk", rows[0].FontFamily)

	assert.ErrorIs(t, service.DeleteTypography(ctx, 2, row.ID), apperrors.ErrTypographyNotFound)
	assert.NoError(t, service.DeleteTypography(ctx, 1, row.ID))

	rows, err = service.ListTypography(ctx, 1)
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAssetService_LogoAssets(t *testing.T) {
	service, store := newAssetServiceForTest()
	ctx := context.Background()
	brand := seedBrand(t, store, 1, true)

	kind := "primary"
	format := "svg"
	asset, err := service.CreateLogoAsset(ctx, 1, LogoAssetInput{
		URL:    "https://cdn.example.com/logo.svg",
		Type:   &kind,
		Format: &format,
	})
	assert.NoError(t, err)
	assert.Equal(t, brand.ID, asset.BrandID)

	assets, err := service.ListLogoAssets(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, assets, 1)

	assert.ErrorIs(t, service.DeleteLogoAsset(ctx, 2, asset.ID), apperrors.ErrLogoAssetNotFound)
	assert.NoError(t, service.DeleteLogoAsset(ctx, 1, asset.ID))

	assets, err = service.ListLogoAssets(ctx, 1)
	assert.NoError(t, err)
	assert.Empty(t, assets)
}
