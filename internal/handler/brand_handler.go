package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"brandforge/internal/errors"
	"brandforge/internal/model"
	"brandforge/internal/service"
)

// BrandHandler handles brand endpoints.
type BrandHandler struct {
	brandService service.BrandService
}

// NewBrandHandler creates a new brand handler.
func NewBrandHandler(brandService service.BrandService) *BrandHandler {
	return &BrandHandler{brandService: brandService}
}

// CreateBrandRequest represents a brand creation payload. A client-supplied
// id or userId is not part of the shape and is therefore dropped on bind.
type CreateBrandRequest struct {
	Name             string           `json:"name" validate:"required,min=2"`
	Tagline          *string          `json:"tagline"`
	MissionStatement *string          `json:"missionStatement" validate:"omitempty,max=250"`
	Keywords         []string         `json:"keywords"`
	Tone             *string          `json:"tone"`
	Narrative        *model.Narrative `json:"narrative"`
	Demographics     []string         `json:"demographics"`
	Psychographics   []string         `json:"psychographics"`
}

// UpdateBrandRequest represents a partial brand update payload.
type UpdateBrandRequest struct {
	Name             *string          `json:"name" validate:"omitempty,min=2"`
	Tagline          *string          `json:"tagline"`
	MissionStatement *string          `json:"missionStatement" validate:"omitempty,max=250"`
	Keywords         []string         `json:"keywords"`
	Tone             *string          `json:"tone"`
	Narrative        *model.Narrative `json:"narrative"`
	Demographics     []string         `json:"demographics"`
	Psychographics   []string         `json:"psychographics"`
}

func brandIDParam(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid brand ID",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}

// ListBrands godoc
// @Summary List brands of the current user
// @Tags brands
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Brand
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /brands [get]
func (h *BrandHandler) ListBrands(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	brands, err := h.brandService.List(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, brands)
}

// GetCurrentBrand godoc
// @Summary Get the current brand
// @Tags brands
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Brand
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /brands/current [get]
func (h *BrandHandler) GetCurrentBrand(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	brand, err := h.brandService.Current(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, brand)
}

// GetBrand godoc
// @Summary Get a brand by id
// @Tags brands
// @Produce json
// @Security BearerAuth
// @Param id path int true "Brand ID"
// @Success 200 {object} model.Brand
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /brands/{id} [get]
func (h *BrandHandler) GetBrand(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := brandIDParam(c)
	if err != nil {
		return err
	}

	brand, err := h.brandService.Get(c.Request().Context(), id, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, brand)
}

// CreateBrand godoc
// @Summary Create a brand
// @Tags brands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBrandRequest true "Brand data"
// @Success 200 {object} model.Brand
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /brands [post]
func (h *BrandHandler) CreateBrand(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateBrandRequest
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

	brand, err := h.brandService.Create(c.Request().Context(), userID, service.BrandInput{
		Name:             &req.Name,
		Tagline:          req.Tagline,
		MissionStatement: req.MissionStatement,
		Keywords:         req.Keywords,
		Tone:             req.Tone,
		Narrative:        req.Narrative,
		Demographics:     req.Demographics,
		Psychographics:   req.Psychographics,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, brand)
}

// UpdateBrand godoc
// @Summary Update a brand
// @Tags brands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Brand ID"
// @Param request body UpdateBrandRequest true "Fields to update"
// @Success 200 {object} model.Brand
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /brands/{id} [put]
func (h *BrandHandler) UpdateBrand(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := brandIDParam(c)
	if err != nil {
		return err
	}

	var req UpdateBrandRequest
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

	brand, err := h.brandService.Update(c.Request().Context(), id, userID, service.BrandInput{
		Name:             req.Name,
		Tagline:          req.Tagline,
		MissionStatement: req.MissionStatement,
		Keywords:         req.Keywords,
		Tone:             req.Tone,
		Narrative:        req.Narrative,
		Demographics:     req.Demographics,
		Psychographics:   req.Psychographics,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, brand)
}

// ActivateBrand godoc
// @Summary Make a brand the current one
// @Tags brands
// @Produce json
// @Security BearerAuth
// @Param id path int true "Brand ID"
// @Success 200 {object} model.Brand
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /brands/{id}/activate [put]
func (h *BrandHandler) ActivateBrand(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := brandIDParam(c)
	if err != nil {
		return err
	}

	brand, err := h.brandService.Activate(c.Request().Context(), id, userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, brand)
}

// DeleteBrand godoc
// @Summary Delete a brand
// @Tags brands
// @Produce json
// @Security BearerAuth
// @Param id path int true "Brand ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /brands/{id} [delete]
func (h *BrandHandler) DeleteBrand(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := brandIDParam(c)
	if err != nil {
		return err
	}

	if err := h.brandService.Delete(c.Request().Context(), id, userID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "brand deleted successfully",
	})
}
