package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"brand not found", ErrBrandNotFound, http.StatusNotFound, "BRAND_NOT_FOUND"},
		{"color not found", ErrColorNotFound, http.StatusNotFound, "COLOR_NOT_FOUND"},
		{"typography not found", ErrTypographyNotFound, http.StatusNotFound, "TYPOGRAPHY_NOT_FOUND"},
		{"logo asset not found", ErrLogoAssetNotFound, http.StatusNotFound, "LOGO_ASSET_NOT_FOUND"},
		{"empty completion", ErrEmptyCompletion, http.StatusBadGateway, "EMPTY_COMPLETION"},
		{"upstream unavailable", ErrUpstreamUnavailable, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE"},
		{"wrapped sentinel", fmt.Errorf("context: %w", ErrUpstreamUnavailable), http.StatusBadGateway, "UPSTREAM_UNAVAILABLE"},
		{"unknown error", fmt.Errorf("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.expectedStatus, httpErr.StatusCode)
			assert.Equal(t, tt.expectedCode, httpErr.Code)
		})
	}
}

func TestHTTPError_ToErrorResponse(t *testing.T) {
	httpErr := NewHTTPError(http.StatusNotFound, "brand not found", "BRAND_NOT_FOUND")
	resp := httpErr.ToErrorResponse()
	assert.Equal(t, "brand not found", resp.Error)
	assert.Equal(t, "BRAND_NOT_FOUND", resp.Code)
}
