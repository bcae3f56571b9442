package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"brandforge/internal/errors"
	"brandforge/internal/service"
)

// AssetHandler handles color, typography and logo asset endpoints.
type AssetHandler struct {
	assetService service.AssetService
}

// NewAssetHandler creates a new asset handler.
func NewAssetHandler(assetService service.AssetService) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

// CreateColorRequest represents a color creation payload. The hex value is
// validated but stored exactly as supplied.
type CreateColorRequest struct {
	BrandID  *uint   `json:"brandId"`
	Name     string  `json:"name" validate:"required"`
	HexValue string  `json:"hexValue" validate:"required,hexcolor"`
	RGBValue *string `json:"rgbValue"`
	Category *string `json:"category" validate:"omitempty,oneof=primary secondary accent"`
}

// CreateTypographyRequest represents a typography creation payload.
type CreateTypographyRequest struct {
	BrandID    *uint    `json:"brandId"`
	FontFamily string   `json:"fontFamily" validate:"required"`
	Category   *string  `json:"category"`
	Weights    []string `json:"weights"`
	Styles     []string `json:"styles"`
}

// CreateLogoAssetRequest represents a logo asset creation payload.
type CreateLogoAssetRequest struct {
	BrandID *uint   `json:"brandId"`
	URL     string  `json:"url" validate:"required,url"`
	Type    *string `json:"type"`
	Format  *string `json:"format"`
}

func assetIDParam(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}

// ListColors godoc
// @Summary List colors of the current brand
// @Tags colors
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Color
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /colors [get]
func (h *AssetHandler) ListColors(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	colors, err := h.assetService.ListColors(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, colors)
}

// CreateColor godoc
// @Summary Add a color
// @Tags colors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateColorRequest true "Color data"
// @Success 200 {object} model.Color
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /colors [post]
func (h *AssetHandler) CreateColor(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateColorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	color, err := h.assetService.CreateColor(c.Request().Context(), userID, service.ColorInput{
		BrandID:  req.BrandID,
		Name:     req.Name,
		HexValue: req.HexValue,
		RGBValue: req.RGBValue,
		Category: req.Category,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, color)
}

// DeleteColor godoc
// @Summary Delete a color
// @Tags colors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Color ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /colors/{id} [delete]
func (h *AssetHandler) DeleteColor(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := assetIDParam(c)
	if err != nil {
		return err
	}

	if err := h.assetService.DeleteColor(c.Request().Context(), userID, id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "color deleted successfully",
	})
}

// ListTypography godoc
// @Summary List typography of the current brand
// @Tags typography
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Typography
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /typography [get]
func (h *AssetHandler) ListTypography(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	rows, err := h.assetService.ListTypography(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, rows)
}

// CreateTypography godoc
// @Summary Add a typography entry
// @Tags typography
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTypographyRequest true "Typography data"
// @Success 200 {object} model.Typography
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /typography [post]
func (h *AssetHandler) CreateTypography(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateTypographyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	typography, err := h.assetService.CreateTypography(c.Request().Context(), userID, service.TypographyInput{
		BrandID:    req.BrandID,
		FontFamily: req.FontFamily,
		Category:   req.Category,
		Weights:    req.Weights,
		Styles:     req.Styles,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, typography)
}

// DeleteTypography godoc
// @Summary Delete a typography entry
// @Tags typography
// @Produce json
// @Security BearerAuth
// @Param id path int true "Typography ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /typography/{id} [delete]
func (h *AssetHandler) DeleteTypography(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := assetIDParam(c)
	if err != nil {
		return err
	}

	if err := h.assetService.DeleteTypography(c.Request().Context(), userID, id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "typography deleted successfully",
	})
}

// ListLogoAssets godoc
// @Summary List logo assets of the current brand
// @Tags logo-assets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.LogoAsset
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /logo-assets [get]
func (h *AssetHandler) ListLogoAssets(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	assets, err := h.assetService.ListLogoAssets(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, assets)
}

// CreateLogoAsset godoc
// @Summary Add a logo asset
// @Tags logo-assets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateLogoAssetRequest true "Logo asset data"
// @Success 200 {object} model.LogoAsset
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /logo-assets [post]
func (h *AssetHandler) CreateLogoAsset(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateLogoAssetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	asset, err := h.assetService.CreateLogoAsset(c.Request().Context(), userID, service.LogoAssetInput{
		BrandID: req.BrandID,
		URL:     req.URL,
		Type:    req.Type,
		Format:  req.Format,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, asset)
}

// DeleteLogoAsset godoc
// @Summary Delete a logo asset
// @Tags logo-assets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Logo asset ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /logo-assets/{id} [delete]
func (h *AssetHandler) DeleteLogoAsset(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := assetIDParam(c)
	if err != nil {
		return err
	}

	if err := h.assetService.DeleteLogoAsset(c.Request().Context(), userID, id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "logo asset deleted successfully",
	})
}
