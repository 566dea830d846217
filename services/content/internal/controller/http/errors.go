package http

import (
	"errors"
	"net/http"

	"platina/services/content/internal/usecase"

	"github.com/gin-gonic/gin"
)

// respondError maps use case errors onto status codes. User-facing messages
// pass through, anything else becomes a generic 500.
func respondError(c *gin.Context, err error) {
	var userErr *usecase.UserError

	switch {
	case errors.Is(err, usecase.ErrBackendUnavailable), errors.Is(err, usecase.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.As(err, &userErr):
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			status = http.StatusNotFound
		case userErr.Err == nil:
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": userErr.Message})
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
