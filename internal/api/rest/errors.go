package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ip-search-agent/internal/api/shared/errors"
)

func respondError(c *gin.Context, err *errors.APIError) {
	c.JSON(err.Status(), err)
}

// respondMissingField rejects a request whose required search input is absent
func respondMissingField(c *gin.Context, message string) {
	respondError(c, errors.NewMissingFieldError(message))
}

func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondError(c, errors.NewBadRequestError(message, details...))
}

func respondValidationError(c *gin.Context, message string) {
	respondError(c, errors.NewValidationError(message))
}

// respondServiceError responds with a dependency failure
func respondServiceError(c *gin.Context, message string, details ...string) {
	respondError(c, errors.NewServiceError(message, details...))
}
