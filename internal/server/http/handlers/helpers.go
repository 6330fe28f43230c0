package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/inventory/internal/domain/errors"
	"github.com/polkiloo/inventory/internal/server/http/dto"
	"github.com/polkiloo/inventory/internal/server/http/middleware"
)

// CurrentOperatorID extracts authenticated operator identifier from context.
func CurrentOperatorID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.OperatorIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// pathID parses the :id parameter. It writes 400 and returns false when the
// value is not a positive integer.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}

// bindJSON decodes the request body and writes 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
		return false
	}
	return true
}

// statusFor maps domain errors to HTTP status codes. Validation is checked
// before not found because a missing referenced row is a validation failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrEmptyDraft):
		return http.StatusConflict
	case errors.Is(err, domainErrors.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	respondStatus(c, statusFor(err), err)
}

// respondStatus hides internal failures from the client and records them on
// the gin context for the request logger.
func respondStatus(c *gin.Context, status int, err error) {
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.AbortWithStatus(status)
		return
	}
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: err.Error()})
}
