package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"brandforge/internal/errors"
	"brandforge/internal/service"
)

// AIHandler handles the AI generation endpoints.
type AIHandler struct {
	generationService service.GenerationService
}

// NewAIHandler creates a new AI handler.
func NewAIHandler(generationService service.GenerationService) *AIHandler {
	return &AIHandler{generationService: generationService}
}

// MessageRequest represents an assistant chat message.
type MessageRequest struct {
	Message string `json:"message" validate:"required"`
}

// MessageResponse represents the assistant's answer.
type MessageResponse struct {
	Message string `json:"message"`
}

// GeneratePaletteRequest represents a palette generation request.
type GeneratePaletteRequest struct {
	BaseColor string `json:"baseColor" validate:"omitempty,hexcolor"`
}

// GenerateNarrativeRequest represents a narrative generation request. The
// fields override the stored brand profile with the client's current form
// values.
type GenerateNarrativeRequest struct {
	BrandName        string   `json:"brandName"`
	Tagline          string   `json:"tagline"`
	MissionStatement string   `json:"missionStatement" validate:"omitempty,max=250"`
	Keywords         []string `json:"keywords"`
	Tone             string   `json:"tone"`
}

// Message godoc
// @Summary Ask the brand assistant
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MessageRequest true "User message"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /ai/message [post]
func (h *AIHandler) Message(c echo.Context) error {
	if _, err := currentUserID(c); err != nil {
		return err
	}

	var req MessageRequest
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

	answer, err := h.generationService.Message(c.Request().Context(), req.Message)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: answer})
}

// GeneratePalette godoc
// @Summary Generate a color palette for the current brand
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GeneratePaletteRequest true "Optional base color"
// @Success 200 {object} ai.ColorPaletteOutput
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /ai/generate-palette [post]
func (h *AIHandler) GeneratePalette(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req GeneratePaletteRequest
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

	palette, err := h.generationService.GeneratePalette(c.Request().Context(), userID, req.BaseColor)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, palette)
}

// GenerateTypography godoc
// @Summary Generate a typography recommendation for the current brand
// @Tags ai
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ai.TypographyOutput
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /ai/generate-typography [post]
func (h *AIHandler) GenerateTypography(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	recommendation, err := h.generationService.GenerateTypography(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, recommendation)
}

// GenerateNarrative godoc
// @Summary Generate the brand narrative
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GenerateNarrativeRequest true "Profile overrides"
// @Success 200 {object} service.NarrativeResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /ai/generate-narrative [post]
func (h *AIHandler) GenerateNarrative(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req GenerateNarrativeRequest
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

	result, err := h.generationService.GenerateNarrative(c.Request().Context(), userID, service.NarrativeRequest{
		BrandName:        req.BrandName,
		Tagline:          req.Tagline,
		MissionStatement: req.MissionStatement,
		Keywords:         req.Keywords,
		Tone:             req.Tone,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, result)
}

// GenerateLogoGuidelines godoc
// @Summary Generate logo usage guidelines
// @Tags ai
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /ai/generate-logo-guidelines [post]
func (h *AIHandler) GenerateLogoGuidelines(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	doc, err := h.generationService.GenerateLogoGuidelines(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, doc)
}

// GenerateDigitalGuidelines godoc
// @Summary Generate digital design guidelines
// @Tags ai
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /ai/generate-digital-guidelines [post]
func (h *AIHandler) GenerateDigitalGuidelines(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	doc, err := h.generationService.GenerateDigitalGuidelines(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, doc)
}

// GeneratePrintGuidelines godoc
// @Summary Generate print design guidelines
// @Tags ai
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /ai/generate-print-guidelines [post]
func (h *AIHandler) GeneratePrintGuidelines(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	doc, err := h.generationService.GeneratePrintGuidelines(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, doc)
}
