package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"brandforge/internal/ai"
	apperrors "brandforge/internal/errors"
	"brandforge/internal/model"
	"brandforge/internal/repository"
)

// Generator is the slice of the AI client the generation service uses.
// ai.Client satisfies it; tests substitute a stub.
type Generator interface {
	GenerateColorPalette(ctx context.Context, profile ai.BrandProfileInput) (*ai.ColorPaletteOutput, error)
	GenerateTypography(ctx context.Context, profile ai.BrandProfileInput) (*ai.TypographyOutput, error)
	GenerateBrandStory(ctx context.Context, profile ai.BrandProfileInput) (*ai.BrandStoryOutput, error)
	GenerateLogoGuidelines(ctx context.Context, profile ai.BrandProfileInput, palette ai.ColorPaletteOutput) (ai.GuidelineDocument, error)
	GenerateDigitalGuidelines(ctx context.Context, profile ai.BrandProfileInput, palette ai.ColorPaletteOutput, typography ai.TypographyOutput) (ai.GuidelineDocument, error)
	GeneratePrintGuidelines(ctx context.Context, profile ai.BrandProfileInput, palette ai.ColorPaletteOutput, typography ai.TypographyOutput) (ai.GuidelineDocument, error)
	Message(ctx context.Context, message string) (string, error)
}

// NarrativeRequest lets the client override stored profile fields with its
// current form values before generating.
type NarrativeRequest struct {
	BrandName        string
	Tagline          string
	MissionStatement string
	Keywords         []string
	Tone             string
}

// NarrativeResult is the generate-narrative response: the full story output
// plus the narrative shape the brand record stores.
type NarrativeResult struct {
	Narrative model.Narrative      `json:"narrative"`
	Story     *ai.BrandStoryOutput `json:"story"`
}

// GenerationService drives the AI artifact generation for the caller's
// current brand and persists the structured results where the UI reads
// them back from the database.
type GenerationService interface {
	Message(ctx context.Context, message string) (string, error)
	GeneratePalette(ctx context.Context, userID uint, baseColor string) (*ai.ColorPaletteOutput, error)
	GenerateTypography(ctx context.Context, userID uint) (*ai.TypographyOutput, error)
	GenerateNarrative(ctx context.Context, userID uint, req NarrativeRequest) (*NarrativeResult, error)
	GenerateLogoGuidelines(ctx context.Context, userID uint) (ai.GuidelineDocument, error)
	GenerateDigitalGuidelines(ctx context.Context, userID uint) (ai.GuidelineDocument, error)
	GeneratePrintGuidelines(ctx context.Context, userID uint) (ai.GuidelineDocument, error)
}

type generationService struct {
	generator      Generator
	brandRepo      repository.BrandRepository
	colorRepo      repository.ColorRepository
	typographyRepo repository.TypographyRepository
}

// NewGenerationService creates a new generation service.
func NewGenerationService(
	generator Generator,
	brandRepo repository.BrandRepository,
	colorRepo repository.ColorRepository,
	typographyRepo repository.TypographyRepository,
) GenerationService {
	return &generationService{
		generator:      generator,
		brandRepo:      brandRepo,
		colorRepo:      colorRepo,
		typographyRepo: typographyRepo,
	}
}

// profileFromBrand maps a stored brand onto the prompt input shape.
func profileFromBrand(brand *model.Brand) ai.BrandProfileInput {
	profile := ai.BrandProfileInput{
		BrandName: brand.Name,
		Keywords:  brand.Keywords,
	}
	if brand.Tagline != nil {
		profile.Tagline = *brand.Tagline
	}
	if brand.MissionStatement != nil {
		profile.MissionStatement = *brand.MissionStatement
	}
	if brand.Tone != nil && *brand.Tone != "" {
		profile.Tone = []string{*brand.Tone}
	}
	audience := append(append([]string{}, brand.Demographics...), brand.Psychographics...)
	profile.TargetAudience = strings.Join(audience, ", ")
	return profile
}

func (s *generationService) Message(ctx context.Context, message string) (string, error) {
	return s.generator.Message(ctx, message)
}

// GeneratePalette generates a palette for the current brand and replaces
// its primary/secondary/accent color rows with the result.
func (s *generationService) GeneratePalette(ctx context.Context, userID uint, baseColor string) (*ai.ColorPaletteOutput, error) {
	brand, err := currentBrand(ctx, s.brandRepo, userID)
	if err != nil {
		return nil, err
	}

	profile := profileFromBrand(brand)
	if baseColor != "" {
		profile.Keywords = append(profile.Keywords, "base color "+baseColor)
	}

	palette, err := s.generator.GenerateColorPalette(ctx, profile)
	if err != nil {
		return nil, err
	}

	categories := []string{model.ColorCategoryPrimary, model.ColorCategorySecondary, model.ColorCategoryAccent}
	if err := s.colorRepo.DeleteByBrandAndCategories(ctx, brand.ID, categories); err != nil {
		return nil, fmt.Errorf("clear palette: %w", err)
	}
	for category, colors := range map[string][]ai.PaletteColor{
		model.ColorCategoryPrimary:   palette.Primary,
		model.ColorCategorySecondary: palette.Secondary,
		model.ColorCategoryAccent:    palette.Accent,
	} {
		for _, generated := range colors {
			cat := category
			color := &model.Color{
				BrandID:  brand.ID,
				Name:     generated.Name,
				HexValue: generated.Hex,
				Category: &cat,
			}
			if err := s.colorRepo.Create(ctx, color); err != nil {
				return nil, fmt.Errorf("store palette color: %w", err)
			}
		}
	}
	return palette, nil
}

// GenerateTypography generates a recommendation for the current brand and
// replaces its typography rows with the result.
func (s *generationService) GenerateTypography(ctx context.Context, userID uint) (*ai.TypographyOutput, error) {
	brand, err := currentBrand(ctx, s.brandRepo, userID)
	if err != nil {
		return nil, err
	}

	recommendation, err := s.generator.GenerateTypography(ctx, profileFromBrand(brand))
	if err != nil {
		return nil, err
	}

	if err := s.typographyRepo.DeleteByBrand(ctx, brand.ID); err != nil {
		return nil, fmt.Errorf("clear typography: %w", err)
	}

	headingWeights, bodyWeights := typescaleWeights(recommendation.Typescale)

	rows := []model.Typography{
		{
			BrandID:    brand.ID,
			FontFamily: recommendation.HeadingFont,
			Category:   categoryPtr(model.TypographyCategoryHeadings),
			Weights:    headingWeights,
		},
		{
			BrandID:    brand.ID,
			FontFamily: recommendation.BodyFont,
			Category:   categoryPtr(model.TypographyCategoryBody),
			Weights:    bodyWeights,
		},
	}
	if recommendation.AccentFont != nil && *recommendation.AccentFont != "" {
		rows = append(rows, model.Typography{
			BrandID:    brand.ID,
			FontFamily: *recommendation.AccentFont,
			Category:   categoryPtr(model.TypographyCategoryAccent),
		})
	}
	for i := range rows {
		if err := s.typographyRepo.Create(ctx, &rows[i]); err != nil {
			return nil, fmt.Errorf("store typography: %w", err)
		}
	}
	return recommendation, nil
}

// GenerateNarrative generates story artifacts. The result is returned but
// not persisted; the client writes the narrative back through the brand
// update endpoint.
func (s *generationService) GenerateNarrative(ctx context.Context, userID uint, req NarrativeRequest) (*NarrativeResult, error) {
	var profile ai.BrandProfileInput
	brand, err := currentBrand(ctx, s.brandRepo, userID)
	switch {
	case err == nil:
		profile = profileFromBrand(brand)
	case errors.Is(err, apperrors.ErrBrandNotFound):
		// no brand yet; generate from the overrides alone
	default:
		return nil, err
	}

	if req.BrandName != "" {
		profile.BrandName = req.BrandName
	}
	if req.Tagline != "" {
		profile.Tagline = req.Tagline
	}
	if req.MissionStatement != "" {
		profile.MissionStatement = req.MissionStatement
	}
	if len(req.Keywords) > 0 {
		profile.Keywords = req.Keywords
	}
	if req.Tone != "" {
		profile.Tone = []string{req.Tone}
	}

	story, err := s.generator.GenerateBrandStory(ctx, profile)
	if err != nil {
		return nil, err
	}

	return &NarrativeResult{
		Narrative: model.Narrative{
			Origin: story.Story,
			Values: strings.Join(story.Values, "\n"),
			Vision: story.VoiceAndTone.Description,
		},
		Story: story,
	}, nil
}

func (s *generationService) GenerateLogoGuidelines(ctx context.Context, userID uint) (ai.GuidelineDocument, error) {
	brand, palette, _, err := s.loadArtifacts(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.generator.GenerateLogoGuidelines(ctx, profileFromBrand(brand), palette)
}

func (s *generationService) GenerateDigitalGuidelines(ctx context.Context, userID uint) (ai.GuidelineDocument, error) {
	brand, palette, typography, err := s.loadArtifacts(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.generator.GenerateDigitalGuidelines(ctx, profileFromBrand(brand), palette, typography)
}

func (s *generationService) GeneratePrintGuidelines(ctx context.Context, userID uint) (ai.GuidelineDocument, error) {
	brand, palette, typography, err := s.loadArtifacts(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.generator.GeneratePrintGuidelines(ctx, profileFromBrand(brand), palette, typography)
}

// loadArtifacts reads the stored palette and typography of the current
// brand back into the prompt input shapes for guideline generation.
func (s *generationService) loadArtifacts(ctx context.Context, userID uint) (*model.Brand, ai.ColorPaletteOutput, ai.TypographyOutput, error) {
	var palette ai.ColorPaletteOutput
	var typography ai.TypographyOutput

	brand, err := currentBrand(ctx, s.brandRepo, userID)
	if err != nil {
		return nil, palette, typography, err
	}

	colors, err := s.colorRepo.ListByBrand(ctx, brand.ID)
	if err != nil {
		return nil, palette, typography, err
	}
	for _, color := range colors {
		entry := ai.PaletteColor{Name: color.Name, Hex: color.HexValue}
		if color.Category == nil {
			continue
		}
		switch *color.Category {
		case model.ColorCategoryPrimary:
			palette.Primary = append(palette.Primary, entry)
		case model.ColorCategorySecondary:
			palette.Secondary = append(palette.Secondary, entry)
		case model.ColorCategoryAccent:
			palette.Accent = append(palette.Accent, entry)
		}
	}

	rows, err := s.typographyRepo.ListByBrand(ctx, brand.ID)
	if err != nil {
		return nil, palette, typography, err
	}
	for _, row := range rows {
		if row.Category == nil {
			continue
		}
		switch *row.Category {
		case model.TypographyCategoryHeadings:
			typography.HeadingFont = row.FontFamily
		case model.TypographyCategoryBody:
			typography.BodyFont = row.FontFamily
		case model.TypographyCategoryAccent:
			accent := row.FontFamily
			typography.AccentFont = &accent
		}
	}

	return brand, palette, typography, nil
}

// typescaleWeights buckets the distinct type scale weights into heading
// levels (H1..H4) and everything else.
func typescaleWeights(scale []ai.TypeScaleEntry) (headings model.StringList, body model.StringList) {
	seenHeading := make(map[string]bool)
	seenBody := make(map[string]bool)
	for _, entry := range scale {
		weight := strconv.Itoa(entry.Weight)
		if strings.HasPrefix(strings.ToUpper(entry.Level), "H") {
			if !seenHeading[weight] {
				seenHeading[weight] = true
				headings = append(headings, weight)
			}
		} else if !seenBody[weight] {
			seenBody[weight] = true
			body = append(body, weight)
		}
	}
	return headings, body
}

func categoryPtr(category string) *string {
	return &category
}
