package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user lookup misses.
	ErrUserNotFound = errors.New("user not found")
	// ErrBrandNotFound is returned when a brand does not exist or is not
	// owned by the caller. The two cases are deliberately indistinguishable.
	ErrBrandNotFound = errors.New("brand not found")
	// ErrColorNotFound is returned when a color lookup misses.
	ErrColorNotFound = errors.New("color not found")
	// ErrTypographyNotFound is returned when a typography lookup misses.
	ErrTypographyNotFound = errors.New("typography not found")
	// ErrLogoAssetNotFound is returned when a logo asset lookup misses.
	ErrLogoAssetNotFound = errors.New("logo asset not found")
	// ErrEmptyCompletion is returned when the completion service answers
	// with no content.
	ErrEmptyCompletion = errors.New("empty response from completion service")
	// ErrUpstreamUnavailable is returned when the completion service keeps
	// failing after retries.
	ErrUpstreamUnavailable = errors.New("completion service unavailable")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrBrandNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "BRAND_NOT_FOUND")
	case errors.Is(err, ErrColorNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "COLOR_NOT_FOUND")
	case errors.Is(err, ErrTypographyNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TYPOGRAPHY_NOT_FOUND")
	case errors.Is(err, ErrLogoAssetNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "LOGO_ASSET_NOT_FOUND")
	case errors.Is(err, ErrEmptyCompletion):
		return NewHTTPError(http.StatusBadGateway, err.Error(), "EMPTY_COMPLETION")
	case errors.Is(err, ErrUpstreamUnavailable):
		return NewHTTPError(http.StatusBadGateway, err.Error(), "UPSTREAM_UNAVAILABLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
