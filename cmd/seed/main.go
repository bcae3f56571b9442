package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"brandforge/internal/config"
	"brandforge/internal/db"
	"brandforge/internal/model"
	"brandforge/internal/repository"
)

const (
	demoUsername = "demo"
	demoPassword = "demo1234"
	demoEmail    = "demo@brandforge.local"
)

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Brand{},
		&model.Color{},
		&model.Typography{},
		&model.LogoAsset{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	brandRepo := repository.NewBrandRepository(gormDB)
	colorRepo := repository.NewColorRepository(gormDB)
	typographyRepo := repository.NewTypographyRepository(gormDB)

	user, err := seedUser(ctx, userRepo)
	if err != nil {
		log.Fatalf("Failed to seed user: %v", err)
	}

	brands, err := brandRepo.ListByUser(ctx, user.ID)
	if err != nil {
		log.Fatalf("Failed to list brands: %v", err)
	}
	if len(brands) > 0 {
		log.Printf("User %q already has %d brand(s), nothing to do", user.Username, len(brands))
		return
	}

	brand, err := seedBrand(ctx, brandRepo, user.ID)
	if err != nil {
		log.Fatalf("Failed to seed brand: %v", err)
	}

	if err := seedPalette(ctx, colorRepo, brand.ID); err != nil {
		log.Fatalf("Failed to seed palette: %v", err)
	}
	if err := seedTypography(ctx, typographyRepo, brand.ID); err != nil {
		log.Fatalf("Failed to seed typography: %v", err)
	}

	log.Println("Seed completed successfully!")
	log.Printf("  - User: %s / %s", demoUsername, demoPassword)
	log.Printf("  - Brand: %s (id=%d)", brand.Name, brand.ID)
}

// seedUser creates the demo user if it does not exist yet.
func seedUser(ctx context.Context, repo repository.UserRepository) (*model.User, error) {
	existing, err := repo.FindByUsername(ctx, demoUsername)
	if err == nil {
		log.Printf("User %q already exists", demoUsername)
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	fullName := "Demo User"
	user := &model.User{
		Username:     demoUsername,
		PasswordHash: string(hash),
		Email:        demoEmail,
		FullName:     &fullName,
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}
	log.Printf("Created user %q", demoUsername)
	return user, nil
}

func seedBrand(ctx context.Context, repo repository.BrandRepository, userID uint) (*model.Brand, error) {
	tagline := "Crafted identities, delivered fast"
	mission := "Help small teams ship a consistent brand identity without hiring an agency."
	tone := "confident"
	brand := &model.Brand{
		UserID:           userID,
		Name:             "Brandforge Studio",
		Tagline:          &tagline,
		MissionStatement: &mission,
		Keywords:         model.StringList{"modern", "approachable", "craft"},
		Tone:             &tone,
		Demographics:     model.StringList{"startup founders", "indie developers"},
		Psychographics:   model.StringList{"values speed", "design conscious"},
		IsActive:         true,
	}
	if err := repo.Create(ctx, brand); err != nil {
		return nil, err
	}
	log.Printf("Created brand %q", brand.Name)
	return brand, nil
}

func seedPalette(ctx context.Context, repo repository.ColorRepository, brandID uint) error {
	type entry struct {
		name, hex, rgb, category string
	}
	entries := []entry{
		{"Forge Orange", "#E85000", "rgb(232, 80, 0)", model.ColorCategoryPrimary},
		{"Charcoal", "#2B2B2B", "rgb(43, 43, 43)", model.ColorCategorySecondary},
		{"Warm Sand", "#F4E8DC", "rgb(244, 232, 220)", model.ColorCategorySecondary},
		{"Electric Teal", "#00B8A9", "rgb(0, 184, 169)", model.ColorCategoryAccent},
	}
	for _, e := range entries {
		rgb := e.rgb
		category := e.category
		color := &model.Color{
			BrandID:  brandID,
			Name:     e.name,
			HexValue: e.hex,
			RGBValue: &rgb,
			Category: &category,
		}
		if err := repo.Create(ctx, color); err != nil {
			return err
		}
	}
	log.Printf("Created %d palette colors", len(entries))
	return nil
}

func seedTypography(ctx context.Context, repo repository.TypographyRepository, brandID uint) error {
	headings := model.TypographyCategoryHeadings
	body := model.TypographyCategoryBody
	entries := []*model.Typography{
		{
			BrandID:    brandID,
			FontFamily: "Space Grotesk",
			Category:   &headings,
			Weights:    model.StringList{"500", "700"},
			Styles:     model.StringList{"normal"},
		},
		{
			BrandID:    brandID,
			FontFamily: "Inter",
			Category:   &body,
			Weights:    model.StringList{"400", "500"},
			Styles:     model.StringList{"normal", "italic"},
		},
	}
	for _, t := range entries {
		if err := repo.Create(ctx, t); err != nil {
			return err
		}
	}
	log.Printf("Created %d typography entries", len(entries))
	return nil
}
