package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"brandforge/internal/config"
	"brandforge/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	brandHandler *handler.BrandHandler,
	assetHandler *handler.AssetHandler,
	aiHandler *handler.AIHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	// Brand routes. "current" must be registered before ":id".
	secured.GET("/brands", brandHandler.ListBrands)
	secured.GET("/brands/current", brandHandler.GetCurrentBrand)
	secured.GET("/brands/:id", brandHandler.GetBrand)
	secured.POST("/brands", brandHandler.CreateBrand)
	secured.PUT("/brands/:id", brandHandler.UpdateBrand)
	secured.PATCH("/brands/:id", brandHandler.UpdateBrand)
	secured.PUT("/brands/:id/activate", brandHandler.ActivateBrand)
	secured.DELETE("/brands/:id", brandHandler.DeleteBrand)

	// Color routes
	secured.GET("/colors", assetHandler.ListColors)
	secured.POST("/colors", assetHandler.CreateColor)
	secured.DELETE("/colors/:id", assetHandler.DeleteColor)

	// Typography routes
	secured.GET("/typography", assetHandler.ListTypography)
	secured.POST("/typography", assetHandler.CreateTypography)
	secured.DELETE("/typography/:id", assetHandler.DeleteTypography)

	// Logo asset routes
	secured.GET("/logo-assets", assetHandler.ListLogoAssets)
	secured.POST("/logo-assets", assetHandler.CreateLogoAsset)
	secured.DELETE("/logo-assets/:id", assetHandler.DeleteLogoAsset)

	// AI generation routes
	secured.POST("/ai/message", aiHandler.Message)
	secured.POST("/ai/generate-palette", aiHandler.GeneratePalette)
	secured.POST("/ai/generate-typography", aiHandler.GenerateTypography)
	secured.POST("/ai/generate-narrative", aiHandler.GenerateNarrative)
	secured.POST("/ai/generate-logo-guidelines", aiHandler.GenerateLogoGuidelines)
	secured.POST("/ai/generate-digital-guidelines", aiHandler.GenerateDigitalGuidelines)
	secured.POST("/ai/generate-print-guidelines", aiHandler.GeneratePrintGuidelines)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
