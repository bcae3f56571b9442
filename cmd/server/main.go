package main

import (
	"log"
	"net/http"
	"time"

	_ "brandforge/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"brandforge/internal/ai"
	"brandforge/internal/auth"
	"brandforge/internal/cache"
	"brandforge/internal/config"
	"brandforge/internal/db"
	"brandforge/internal/handler"
	"brandforge/internal/model"
	"brandforge/internal/repository"
	"brandforge/internal/router"
	"brandforge/internal/service"
)

// @title Brandforge API
// @version 1.0
// @description Brand style-guide builder with AI-assisted palette, typography and narrative generation.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	var (
		userRepo       repository.UserRepository
		brandRepo      repository.BrandRepository
		colorRepo      repository.ColorRepository
		typographyRepo repository.TypographyRepository
		logoAssetRepo  repository.LogoAssetRepository
		tokenStore     auth.TokenStore
		cacheClient    *cache.Client
	)

	// The storage backend is chosen once at startup; request handlers never
	// branch on it.
	switch cfg.StorageDriver {
	case "memory":
		log.Println("using in-memory storage (development/testing only)")
		store := repository.NewMemoryStore()
		userRepo = store.Users()
		brandRepo = store.Brands()
		colorRepo = store.Colors()
		typographyRepo = store.Typography()
		logoAssetRepo = store.LogoAssets()
		tokenStore = auth.NewMemoryTokenStore()
	default:
		gormDB, err := db.NewMySQL(cfg.MySQLDSN)
		if err != nil {
			log.Fatalf("database init: %v", err)
		}

		if err := gormDB.AutoMigrate(
			&model.User{},
			&model.Brand{},
			&model.Color{},
			&model.Typography{},
			&model.LogoAsset{},
		); err != nil {
			log.Fatalf("auto-migrate: %v", err)
		}

		cacheClient = cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		userRepo = repository.NewUserRepository(gormDB)
		brandRepo = repository.NewBrandRepository(gormDB)
		colorRepo = repository.NewColorRepository(gormDB)
		typographyRepo = repository.NewTypographyRepository(gormDB)
		logoAssetRepo = repository.NewLogoAssetRepository(gormDB)
		tokenStore = auth.NewRedisTokenStore(cacheClient)
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize the completion client
	aiClient := ai.NewClient(
		cfg.OpenAIAPIKey,
		cfg.OpenAIModel,
		time.Duration(cfg.AITimeoutSeconds)*time.Second,
		cfg.AIMaxRetries,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	brandService := service.NewBrandService(brandRepo, cacheClient)
	assetService := service.NewAssetService(brandRepo, colorRepo, typographyRepo, logoAssetRepo)
	generationService := service.NewGenerationService(aiClient, brandRepo, colorRepo, typographyRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	brandHandler := handler.NewBrandHandler(brandService)
	assetHandler := handler.NewAssetHandler(assetService)
	aiHandler := handler.NewAIHandler(generationService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		brandHandler,
		assetHandler,
		aiHandler,
	)

	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "http://localhost:" + cfg.ServerPort
	}
	log.Printf("Swagger documentation available at: %s/swagger/index.html", swaggerHost)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
