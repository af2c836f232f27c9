package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"swiftride/internal/pricing"
	"swiftride/internal/repository"
	"swiftride/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	var unknownCategory *pricing.UnknownCategoryError

	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	case errors.As(err, &unknownCategory),
		errors.Is(err, service.ErrInvalidCustomer),
		errors.Is(err, service.ErrInvalidDriverID):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrNoDriverAvailable):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}
